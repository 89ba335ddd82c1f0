package catalog

// Catalog is the load-once definition of questions, sections and flow
// order. Construct with New (or LoadFile) at process start and pass by
// reference; it is treated as immutable for the process lifetime.
type Catalog struct {
	version      string
	questions    map[string]*Question
	sections     map[string]*Section
	questionFlow []string
	sectionFlow  []string

	flowIndex    map[string]int
	sectionIndex map[string]int
}

// Definition is the raw, serializable form of a catalog artifact.
type Definition struct {
	Version      string              `json:"version"`
	Questions    map[string]Question `json:"questions"`
	Sections     map[string]Section  `json:"sections"`
	QuestionFlow []string            `json:"question_flow"`
	SectionFlow  []string            `json:"section_flow"`
}

// New builds a Catalog from a definition, validating its structure.
// A malformed definition (dangling reference, empty flow, bad version)
// is an error; callers treat it as a fatal startup condition.
func New(def Definition) (*Catalog, error) {
	if err := validate(def); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:      def.Version,
		questions:    make(map[string]*Question, len(def.Questions)),
		sections:     make(map[string]*Section, len(def.Sections)),
		questionFlow: def.QuestionFlow,
		sectionFlow:  def.SectionFlow,
		flowIndex:    make(map[string]int, len(def.QuestionFlow)),
		sectionIndex: make(map[string]int, len(def.SectionFlow)),
	}

	for id, q := range def.Questions {
		q := q
		if q.ID == "" {
			q.ID = id
		}
		c.questions[id] = &q
	}
	for id, s := range def.Sections {
		s := s
		if s.ID == "" {
			s.ID = id
		}
		c.sections[id] = &s
	}
	for i, id := range def.QuestionFlow {
		c.flowIndex[id] = i
	}
	for i, id := range def.SectionFlow {
		c.sectionIndex[id] = i
	}

	return c, nil
}

// Version returns the catalog artifact version (semver).
func (c *Catalog) Version() string {
	return c.version
}

// Question returns the question with the given ID, or nil if unknown.
func (c *Catalog) Question(id string) *Question {
	return c.questions[id]
}

// Section returns the section with the given ID, or nil if unknown.
func (c *Catalog) Section(id string) *Section {
	return c.sections[id]
}

// SectionOf returns the section owning the given question, or nil.
func (c *Catalog) SectionOf(questionID string) *Section {
	q := c.questions[questionID]
	if q == nil {
		return nil
	}
	return c.sections[q.Section]
}

// FirstQuestion returns the ID of the first question in the flow.
func (c *Catalog) FirstQuestion() string {
	return c.questionFlow[0]
}

// NextInFlow returns the question following id in the default linear
// traversal. The second result is false at the end of the flow or when
// id is unknown; absence is not an error.
func (c *Catalog) NextInFlow(id string) (string, bool) {
	i, ok := c.flowIndex[id]
	if !ok || i+1 >= len(c.questionFlow) {
		return "", false
	}
	return c.questionFlow[i+1], true
}

// PreviousInFlow returns the question preceding id in the flow, or
// false at the start of the flow or for an unknown id.
func (c *Catalog) PreviousInFlow(id string) (string, bool) {
	i, ok := c.flowIndex[id]
	if !ok || i == 0 {
		return "", false
	}
	return c.questionFlow[i-1], true
}

// FlowPosition returns the zero-based position of id in the question
// flow, or false if the id does not appear in the flow.
func (c *Catalog) FlowPosition(id string) (int, bool) {
	i, ok := c.flowIndex[id]
	return i, ok
}

// FlowLen returns the number of questions in the flow.
func (c *Catalog) FlowLen() int {
	return len(c.questionFlow)
}

// NextSectionStart returns the first question of the section following
// sectionID in the section flow. The second result is false when
// sectionID is the last section (or unknown).
func (c *Catalog) NextSectionStart(sectionID string) (string, bool) {
	i, ok := c.sectionIndex[sectionID]
	if !ok {
		return "", false
	}
	for j := i + 1; j < len(c.sectionFlow); j++ {
		next := c.sections[c.sectionFlow[j]]
		if next != nil && len(next.Questions) > 0 {
			return next.Questions[0], true
		}
	}
	return "", false
}

// Sections returns the section IDs in section-flow order.
func (c *Catalog) Sections() []string {
	out := make([]string, len(c.sectionFlow))
	copy(out, c.sectionFlow)
	return out
}
