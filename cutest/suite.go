package cutest

import (
	"github.com/Canary-Developer/canary/framework"
)

// Case is a named unit of test logic.
type Case struct {
	Name string
	Func func(*T)
}

func NewCase(name string, fn func(*T)) Case {
	return Case{Name: name, Func: fn}
}

// Suite is an ordered collection of cases. Cases run in the order they were added.
type Suite struct {
	cases []Case
}

func NewSuite() *Suite {
	return &Suite{}
}

// AddTest appends a case. Names are not required to be unique.
func (s *Suite) AddTest(name string, fn func(*T)) {
	s.AddCase(NewCase(name, fn))
}

func (s *Suite) AddCase(c Case) {
	s.cases = append(s.cases, c)
}

// AddSuite appends all of child's current cases, in order, after the cases already in s.
// Cases added to child afterward are not seen by s.
func (s *Suite) AddSuite(child *Suite) {
	s.cases = append(s.cases, child.cases...)
}

// Cases returns a copy of the registered cases.
func (s *Suite) Cases() []Case {
	return append([]Case(nil), s.cases...)
}

func (s *Suite) Len() int {
	return len(s.cases)
}

// Run executes every case in registration order and returns the report. Both filter and
// testLogger may be nil.
func (s *Suite) Run(filter framework.Filter, testLogger framework.TestLogger) Report {
	results := framework.Run(filter, testLogger, func(c *framework.Context) {
		for _, tc := range s.cases {
			tc := tc
			c.Run(tc.Name, func(c *framework.Context) {
				if tc.Func != nil {
					tc.Func(newT(c))
				}
			})
		}
	})
	return Report{results: results}
}
