package flagkit

import (
	"fmt"
	"strconv"

	"github.com/flagkit/flagkit-golang/internal/condition"
	"github.com/flagkit/flagkit-golang/internal/value"
	"golang.org/x/exp/maps"
)

// evaluator runs a single evaluation against one consistent snapshot
// of the catalog. The sticky-bucket document cache is an arena owned
// by the evaluation and is not shared.
type evaluator struct {
	features          FeatureMap
	savedGroups       condition.SavedGroups
	evaluated         stack[string]
	client            *Client
	stickyAssignments StickyBucketAssignments
}

func (e *evaluator) evalFeature(key string) *FeatureResult {
	if e.evaluated.has(key) {
		return getFeatureResult(nil, CyclicPrerequisiteResultSource, "", nil, nil)
	}
	e.evaluated.push(key)
	defer e.evaluated.pop()

	feature := e.features[key]
	if feature == nil {
		return getFeatureResult(nil, UnknownFeatureResultSource, "", nil, nil)
	}

	for i := range feature.Rules {
		res := e.evalRule(key, &feature.Rules[i])
		if res != nil {
			return res
		}
	}

	return getFeatureResult(feature.DefaultValue, DefaultValueResultSource, "", nil, nil)
}

// evalRule returns nil when the rule does not apply and evaluation
// should continue with the next rule.
func (e *evaluator) evalRule(featureId string, rule *FeatureRule) *FeatureResult {
	for _, parent := range rule.ParentConditions {
		res := e.evalFeature(parent.Id)
		if res == nil {
			return nil
		}

		if res.Source == CyclicPrerequisiteResultSource {
			return res
		}

		parentObj := value.ObjValue{"value": value.New(res.Value)}
		if !parent.Condition.Eval(parentObj, e.savedGroups) {
			if parent.Gate {
				e.client.logger.Debug("Feature blocked by prerequisite", "id", featureId, "parent", parent.Id)
				return getFeatureResult(nil, PrerequisiteResultSource, "", nil, nil)
			}
			e.client.logger.Debug("Skip rule because prerequisite evaluation fails", "id", featureId, "parent", parent.Id)
			return nil
		}
	}

	if e.isFilteredOut(rule.Filters) {
		e.client.logger.Debug("Skip rule because of filters", "id", featureId)
		return nil
	}

	if rule.Force != nil {
		if !rule.Condition.Eval(e.client.attributes, e.savedGroups) {
			e.client.logger.Debug("Skip rule because of condition", "id", featureId)
			return nil
		}

		if !e.isIncludedInRollout(featureId, rule) {
			e.client.logger.Debug("Skip rule because user not included in rollout", "id", featureId)
			return nil
		}

		return getFeatureResult(rule.Force, ForceResultSource, rule.ID, nil, nil)
	}

	if len(rule.Variations) == 0 {
		return nil
	}

	exp := experimentFromFeatureRule(featureId, rule)
	res := e.runExperiment(exp, featureId)
	if !res.InExperiment || res.Passthrough {
		return nil
	}

	return getFeatureResult(res.Value, ExperimentResultSource, rule.ID, exp, res)
}

// isIncludedInRollout applies a force rule's coverage or range as a
// deterministic hash gate.
func (e *evaluator) isIncludedInRollout(featureId string, rule *FeatureRule) bool {
	if rule.Coverage == nil && rule.Range == nil {
		return true
	}

	if rule.Range == nil && *rule.Coverage == 0.0 {
		return false
	}

	_, hashValue := e.getHashAttribute(rule.HashAttribute, "")
	if hashValue == "" {
		return false
	}

	seed := rule.Seed
	if seed == "" {
		seed = featureId
	}
	n := hash(seed, hashValue, if0(rule.HashVersion, 1))
	if n == nil {
		return false
	}

	if rule.Range != nil {
		return rule.Range.InRange(*n)
	}
	return *n <= *rule.Coverage
}

// isFilteredOut reports whether any filter excludes the user.
func (e *evaluator) isFilteredOut(filters []Filter) bool {
	for i := range filters {
		filter := &filters[i]
		_, hashValue := e.getHashAttribute(filter.Attribute, "")
		if hashValue == "" {
			return true
		}

		n := hash(filter.Seed, hashValue, if0(filter.HashVersion, 2))
		if n == nil {
			return true
		}
		if chooseVariation(*n, filter.Ranges) == -1 {
			return true
		}
	}
	return false
}

func (e *evaluator) runExperiment(exp *Experiment, featureId string) *ExperimentResult {
	// 1. Experiments need at least 2 variations.
	if len(exp.Variations) < 2 {
		e.client.logger.Debug("Invalid experiment", "id", exp.Key)
		return e.getExperimentResult(exp, -1, false, featureId, nil, false)
	}

	// 2. Nothing runs on a globally disabled client.
	if !e.client.enabled {
		e.client.logger.Debug("Client disabled", "id", exp.Key)
		return e.getExperimentResult(exp, -1, false, featureId, nil, false)
	}

	// 3. A variation forced via the URL query string wins.
	if qsOverride, ok := getQueryStringOverride(exp.Key, e.client.url, len(exp.Variations)); ok {
		e.client.logger.Debug("Force via querystring", "id", exp.Key, "variation", qsOverride)
		return e.getExperimentResult(exp, qsOverride, false, featureId, nil, false)
	}

	// 4. Then variations forced via the client (dev tools / QA).
	if varId, ok := e.client.forcedVariations[exp.Key]; ok {
		e.client.logger.Debug("Force via dev tools", "id", exp.Key, "variation", varId)
		return e.getExperimentResult(exp, varId, false, featureId, nil, false)
	}

	// 5. Inactive experiments don't assign anyone.
	if !exp.getActive() {
		e.client.logger.Debug("Skip because inactive", "id", exp.Key)
		return e.getExperimentResult(exp, -1, false, featureId, nil, false)
	}

	// 6. Get the user hash value; the fallback attribute only applies
	// when sticky bucketing is available.
	fallback := ""
	if e.stickyEnabled(exp) {
		fallback = exp.FallbackAttribute
	}
	_, hashValue := e.getHashAttribute(exp.HashAttribute, fallback)
	if hashValue == "" {
		e.client.logger.Debug("Skip because of missing hashAttribute", "id", exp.Key)
		return e.getExperimentResult(exp, -1, false, featureId, nil, false)
	}

	assigned := -1
	foundSticky := false

	// 7. A prior sticky assignment short-circuits bucketing; a blocked
	// bucket version excludes the user entirely.
	if e.stickyEnabled(exp) {
		variation, versionBlocked := e.stickyBucketVariation(exp)
		if versionBlocked {
			e.client.logger.Debug("Skip because sticky bucket version is blocked", "id", exp.Key)
			return e.getExperimentResult(exp, -1, false, featureId, nil, false)
		}
		if variation >= 0 {
			assigned = variation
			foundSticky = true
		}
	}

	// The bucket is reported even when a sticky assignment
	// short-circuits variation choice.
	n := hash(exp.getSeed(), hashValue, if0(exp.HashVersion, 1))

	if !foundSticky {
		// 8. Apply filters and namespace.
		if len(exp.Filters) > 0 {
			if e.isFilteredOut(exp.Filters) {
				e.client.logger.Debug("Skip because of filters", "id", exp.Key)
				return e.getExperimentResult(exp, -1, false, featureId, nil, false)
			}
		} else if exp.Namespace != nil && !exp.Namespace.inNamespace(hashValue) {
			e.client.logger.Debug("Skip because of namespace", "id", exp.Key)
			return e.getExperimentResult(exp, -1, false, featureId, nil, false)
		}

		// 9. Targeting condition.
		if !exp.Condition.Eval(e.client.attributes, e.savedGroups) {
			e.client.logger.Debug("Skip because of condition", "id", exp.Key)
			return e.getExperimentResult(exp, -1, false, featureId, nil, false)
		}

		// 10. Prerequisites.
		for _, parent := range exp.ParentConditions {
			res := e.evalFeature(parent.Id)
			if res == nil || res.Source == CyclicPrerequisiteResultSource {
				return e.getExperimentResult(exp, -1, false, featureId, nil, false)
			}

			parentObj := value.ObjValue{"value": value.New(res.Value)}
			if !parent.Condition.Eval(parentObj, e.savedGroups) {
				e.client.logger.Debug("Skip because prerequisite evaluation fails", "id", exp.Key)
				return e.getExperimentResult(exp, -1, false, featureId, nil, false)
			}
		}

		// 11. Choose a variation from the bucket.
		if n == nil {
			e.client.logger.Debug("Skip because of invalid hash version", "id", exp.Key)
			return e.getExperimentResult(exp, -1, false, featureId, nil, false)
		}

		ranges := exp.Ranges
		if len(ranges) == 0 {
			ranges = e.client.getBucketRanges(len(exp.Variations), exp.getCoverage(), exp.Weights)
		}
		assigned = chooseVariation(*n, ranges)
	}

	// 12. Not in any range means not in the experiment.
	if assigned < 0 {
		e.client.logger.Debug("Skip because of coverage", "id", exp.Key)
		return e.getExperimentResult(exp, -1, false, featureId, nil, false)
	}

	// 13. A variation forced on the experiment itself.
	if exp.Force != nil {
		e.client.logger.Debug("Force variation", "id", exp.Key, "variation", *exp.Force)
		return e.getExperimentResult(exp, *exp.Force, false, featureId, nil, false)
	}

	// 14. QA mode disables random assignment.
	if e.client.qaMode {
		e.client.logger.Debug("Skip because of QA mode", "id", exp.Key)
		return e.getExperimentResult(exp, -1, false, featureId, nil, false)
	}

	// 15. Build the result and persist the assignment.
	res := e.getExperimentResult(exp, assigned, true, featureId, n, foundSticky)
	if e.stickyEnabled(exp) {
		e.saveStickyBucketAssignment(exp, res)
	}
	return res
}

func (e *evaluator) getExperimentResult(
	exp *Experiment,
	variationId int,
	hashUsed bool,
	featureId string,
	bucket *float64,
	stickyBucketUsed bool,
) *ExperimentResult {
	inExperiment := true

	if variationId < 0 || variationId >= len(exp.Variations) {
		variationId = 0
		inExperiment = false
	}

	fallback := ""
	if e.stickyEnabled(exp) {
		fallback = exp.FallbackAttribute
	}
	hashAttribute, hashValue := e.getHashAttribute(exp.HashAttribute, fallback)

	var meta *VariationMeta
	if variationId >= 0 && variationId < len(exp.Meta) {
		meta = &exp.Meta[variationId]
	}

	key := fmt.Sprint(variationId)
	if meta != nil && meta.Key != "" {
		key = meta.Key
	}

	var variationValue FeatureValue
	if variationId < len(exp.Variations) {
		variationValue = exp.Variations[variationId]
	}

	res := ExperimentResult{
		Key:              key,
		FeatureId:        featureId,
		InExperiment:     inExperiment,
		HashUsed:         hashUsed,
		VariationId:      variationId,
		Value:            variationValue,
		HashAttribute:    hashAttribute,
		HashValue:        hashValue,
		Bucket:           bucket,
		StickyBucketUsed: stickyBucketUsed,
	}

	if meta != nil {
		res.Name = meta.Name
		res.Passthrough = meta.Passthrough
	}

	return &res
}

// getHashAttribute resolves the attribute used for hashing. It
// defaults to "id" and falls back to the fallback attribute when the
// primary one is missing or null.
func (e *evaluator) getHashAttribute(key string, fallback string) (string, string) {
	if key == "" {
		key = "id"
	}

	hashValue, ok := e.client.attributes[key]
	if ok && !value.IsNull(hashValue) {
		return key, hashValue.String()
	}

	if fallback != "" {
		hashValue, ok = e.client.attributes[fallback]
		if ok && !value.IsNull(hashValue) {
			return fallback, hashValue.String()
		}
	}

	return key, ""
}

func (e *evaluator) stickyEnabled(exp *Experiment) bool {
	return e.client.stickyBucketService != nil && !exp.DisableStickyBucketing
}

// stickyBucketVariation looks up a prior assignment for the
// experiment, pooling documents for the primary and fallback
// attributes. It also reports whether the user's stored bucket
// version excludes them via minBucketVersion.
func (e *evaluator) stickyBucketVariation(exp *Experiment) (int, bool) {
	assignments := e.stickyBucketAssignments(exp)

	if isVersionBlocked(assignments, exp.Key, exp.MinBucketVersion) {
		return -1, true
	}

	expKey := stickyBucketExperimentKey(exp.Key, bucketVersion(exp.BucketVersion))
	variationKey, ok := assignments[expKey]
	if !ok {
		return -1, false
	}

	for i := range exp.Meta {
		if exp.Meta[i].Key == variationKey {
			return i, false
		}
	}
	if len(exp.Meta) == 0 {
		if i, err := strconv.Atoi(variationKey); err == nil && i >= 0 && i < len(exp.Variations) {
			return i, false
		}
	}
	return -1, false
}

// stickyBucketAssignments merges the assignment docs relevant to the
// user's (attribute, fallback attribute) pair, the primary taking
// precedence, loading them through the per-evaluation cache.
func (e *evaluator) stickyBucketAssignments(exp *Experiment) map[string]string {
	hashAttr, hashValue := e.getHashAttribute(exp.HashAttribute, "")
	fallbackAttr, fallbackValue := "", ""
	if exp.FallbackAttribute != "" && exp.FallbackAttribute != hashAttr {
		fallbackAttr, fallbackValue = e.getHashAttribute(exp.FallbackAttribute, "")
	}

	attrs := map[string]string{}
	if hashValue != "" {
		attrs[hashAttr] = hashValue
	}
	if fallbackValue != "" {
		attrs[fallbackAttr] = fallbackValue
	}
	e.loadStickyBucketDocs(attrs)

	var fallbackDoc, primaryDoc *StickyBucketAssignmentDoc
	if fallbackValue != "" {
		fallbackDoc = e.stickyAssignments[stickyBucketKey(fallbackAttr, fallbackValue)]
	}
	if hashValue != "" {
		primaryDoc = e.stickyAssignments[stickyBucketKey(hashAttr, hashValue)]
	}
	return mergeAssignments(fallbackDoc, primaryDoc)
}

// loadStickyBucketDocs fetches docs not yet present in the
// per-evaluation cache. Absent docs are cached as nil so a store is
// consulted at most once per attribute pair per evaluation.
func (e *evaluator) loadStickyBucketDocs(attrs map[string]string) {
	missing := map[string]string{}
	for name, val := range attrs {
		if _, ok := e.stickyAssignments[stickyBucketKey(name, val)]; !ok {
			missing[name] = val
		}
	}
	if len(missing) == 0 {
		return
	}

	docs, err := e.client.stickyBucketService.GetAllAssignments(missing)
	if err != nil {
		e.client.logger.Warn("Error loading sticky bucket assignments", "error", err)
	} else {
		maps.Copy(e.stickyAssignments, docs)
	}
	for name, val := range missing {
		key := stickyBucketKey(name, val)
		if _, ok := e.stickyAssignments[key]; !ok {
			e.stickyAssignments[key] = nil
		}
	}
}

// saveStickyBucketAssignment writes the new assignment through the
// per-evaluation cache to the store. The document is keyed by the
// attribute actually used for hashing and is seeded from the fallback
// attribute's document, which upgrades fallback assignments to the
// primary attribute while preserving the fallback document.
func (e *evaluator) saveStickyBucketAssignment(exp *Experiment, res *ExperimentResult) {
	if res.HashValue == "" {
		return
	}

	merged := e.stickyBucketAssignments(exp)
	expKey := stickyBucketExperimentKey(exp.Key, bucketVersion(exp.BucketVersion))
	merged[expKey] = res.Key

	docKey := stickyBucketKey(res.HashAttribute, res.HashValue)
	existing := e.stickyAssignments[docKey]
	if existing != nil && maps.Equal(existing.Assignments, merged) {
		return
	}

	doc := &StickyBucketAssignmentDoc{
		AttributeName:  res.HashAttribute,
		AttributeValue: res.HashValue,
		Assignments:    merged,
	}
	e.stickyAssignments[docKey] = doc
	if err := e.client.stickyBucketService.SaveAssignments(doc); err != nil {
		e.client.logger.Warn("Error saving sticky bucket assignment", "error", err)
	}
}

func bucketVersion(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
