// Package catalog defines the static questionnaire: the pillar registry, the
// question tables, and the load-time invariants over their weights.
package catalog

import (
	"fmt"
	"math"

	"irindex/internal/model"
)

// weightTolerance absorbs float drift when checking weight sums
const weightTolerance = 1e-9

// Catalog is the validated, indexed questionnaire definition. It is built
// once at startup and read-only afterwards, so concurrent use is safe.
type Catalog struct {
	pillars   []model.Pillar
	questions []model.Question

	questionByID map[string]*model.Question
	byPillar     map[model.PillarID][]*model.Question
}

// New builds a catalog and verifies the authoring invariants: pillar weights
// sum to 1.0, each pillar's question weights sum to 1.0, ids are unique, and
// option values stay inside [0,100]. These are checked here once rather than
// on every scoring call.
func New(pillars []model.Pillar, questions []model.Question) (*Catalog, error) {
	c := &Catalog{
		pillars:      pillars,
		questions:    questions,
		questionByID: make(map[string]*model.Question, len(questions)),
		byPillar:     make(map[model.PillarID][]*model.Question, len(pillars)),
	}

	pillarWeight := 0.0
	pillarIDs := make(map[model.PillarID]bool, len(pillars))
	for i := range pillars {
		p := &pillars[i]
		if p.Weight <= 0 {
			return nil, fmt.Errorf("catalog: pillar %s has non-positive weight %v", p.ID, p.Weight)
		}
		if pillarIDs[p.ID] {
			return nil, fmt.Errorf("catalog: duplicate pillar id %s", p.ID)
		}
		pillarIDs[p.ID] = true
		pillarWeight += p.Weight
	}
	if math.Abs(pillarWeight-1.0) > weightTolerance {
		return nil, fmt.Errorf("catalog: pillar weights sum to %v, want 1.0", pillarWeight)
	}

	for i := range questions {
		q := &questions[i]
		if _, dup := c.questionByID[q.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate question id %s", q.ID)
		}
		if !pillarIDs[q.PillarID] {
			return nil, fmt.Errorf("catalog: question %s references unknown pillar %s", q.ID, q.PillarID)
		}
		if q.Weight <= 0 {
			return nil, fmt.Errorf("catalog: question %s has non-positive weight %v", q.ID, q.Weight)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("catalog: question %s has no options", q.ID)
		}
		for _, opt := range q.Options {
			if opt.Value < 0 || opt.Value > 100 {
				return nil, fmt.Errorf("catalog: question %s option value %v outside [0,100]", q.ID, opt.Value)
			}
		}
		c.questionByID[q.ID] = q
		c.byPillar[q.PillarID] = append(c.byPillar[q.PillarID], q)
	}

	for _, p := range pillars {
		qs := c.byPillar[p.ID]
		if len(qs) == 0 {
			return nil, fmt.Errorf("catalog: pillar %s has no questions", p.ID)
		}
		sum := 0.0
		for _, q := range qs {
			sum += q.Weight
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return nil, fmt.Errorf("catalog: question weights for pillar %s sum to %v, want 1.0", p.ID, sum)
		}
	}

	return c, nil
}

// Default builds the built-in insider-risk catalog
func Default() (*Catalog, error) {
	return New(Pillars(), Questions())
}

// Pillars returns the pillars in registry order
func (c *Catalog) Pillars() []model.Pillar {
	return c.pillars
}

// Questions returns all questions in catalog order
func (c *Catalog) Questions() []model.Question {
	return c.questions
}

// QuestionByID returns the question with the given id, or nil
func (c *Catalog) QuestionByID(id string) *model.Question {
	return c.questionByID[id]
}

// QuestionsForPillar returns a pillar's questions in catalog order
func (c *Catalog) QuestionsForPillar(id model.PillarID) []*model.Question {
	return c.byPillar[id]
}

// Size returns the number of questions in the catalog
func (c *Catalog) Size() int {
	return len(c.questions)
}
