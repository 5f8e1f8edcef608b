package flagkit

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
)

// StickyBucketAssignmentDoc stores the persisted variation
// assignments for one (attribute name, attribute value) pair.
type StickyBucketAssignmentDoc struct {
	AttributeName  string            `json:"attributeName"`
	AttributeValue string            `json:"attributeValue"`
	Assignments    map[string]string `json:"assignments"`
}

// StickyBucketAssignments maps "<attributeName>||<attributeValue>"
// keys to assignment documents.
type StickyBucketAssignments map[string]*StickyBucketAssignmentDoc

// StickyBucketService is the user-supplied persistence for sticky
// bucket assignments. Implementations must be safe for concurrent
// use; the engine does not lock around them.
type StickyBucketService interface {
	GetAssignments(attributeName string, attributeValue string) (*StickyBucketAssignmentDoc, error)
	SaveAssignments(doc *StickyBucketAssignmentDoc) error
	GetAllAssignments(attributes map[string]string) (StickyBucketAssignments, error)
}

func stickyBucketKey(attributeName, attributeValue string) string {
	return attributeName + "||" + attributeValue
}

// Assignments are keyed by experiment key and bucket version.
func stickyBucketExperimentKey(experimentKey string, bucketVersion int) string {
	return fmt.Sprintf("%s__%d", experimentKey, bucketVersion)
}

// isVersionBlocked reports whether the user holds an assignment from
// a bucket version below minBucketVersion, which excludes them from
// newer versions of the experiment.
func isVersionBlocked(assignments map[string]string, experimentKey string, minBucketVersion int) bool {
	if minBucketVersion <= 0 {
		return false
	}
	for v := 0; v < minBucketVersion; v++ {
		if _, ok := assignments[stickyBucketExperimentKey(experimentKey, v)]; ok {
			return true
		}
	}
	return false
}

// mergeAssignments pools the assignments of the given docs; later
// docs take precedence, so callers list the fallback attribute doc
// before the primary one.
func mergeAssignments(docs ...*StickyBucketAssignmentDoc) map[string]string {
	merged := map[string]string{}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		maps.Copy(merged, doc.Assignments)
	}
	return merged
}

// InMemoryStickyBucketService is a simple in-process implementation
// of StickyBucketService, suitable for tests and single-instance
// deployments.
type InMemoryStickyBucketService struct {
	mu   sync.RWMutex
	docs map[string]*StickyBucketAssignmentDoc
}

func NewInMemoryStickyBucketService() *InMemoryStickyBucketService {
	return &InMemoryStickyBucketService{
		docs: map[string]*StickyBucketAssignmentDoc{},
	}
}

func (s *InMemoryStickyBucketService) GetAssignments(attributeName, attributeValue string) (*StickyBucketAssignmentDoc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[stickyBucketKey(attributeName, attributeValue)]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (s *InMemoryStickyBucketService) SaveAssignments(doc *StickyBucketAssignmentDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[stickyBucketKey(doc.AttributeName, doc.AttributeValue)] = doc
	return nil
}

func (s *InMemoryStickyBucketService) GetAllAssignments(attributes map[string]string) (StickyBucketAssignments, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := StickyBucketAssignments{}
	for name, val := range attributes {
		key := stickyBucketKey(name, val)
		if doc, ok := s.docs[key]; ok {
			res[key] = doc
		}
	}
	return res, nil
}

// Destroy clears all stored assignments.
func (s *InMemoryStickyBucketService) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = map[string]*StickyBucketAssignmentDoc{}
}
