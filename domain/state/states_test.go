package state_test

import (
	"caseflow/domain/state"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("States", func() {
	Describe("Parse", func() {
		It("should accept every defined state", func() {
			for _, s := range state.All {
				parsed, err := state.Parse(s.String())
				Expect(err).To(BeNil())
				Expect(parsed).To(Equal(s))
			}
		})

		It("should reject undefined states", func() {
			_, err := state.Parse("NOT_A_STATE")
			Expect(err).To(Equal(state.ErrUnknownState))

			_, err = state.Parse("")
			Expect(err).To(Equal(state.ErrUnknownState))

			// case matters: the wire format is the upper snake form only
			_, err = state.Parse("draft")
			Expect(err).To(Equal(state.ErrUnknownState))
		})
	})

	Describe("Terminal", func() {
		It("should mark exactly CLOSURE and REJECTED as terminal", func() {
			terminals := []state.State{}
			for _, s := range state.All {
				if s.Terminal() {
					terminals = append(terminals, s)
				}
			}
			Expect(terminals).To(Equal([]state.State{state.Closure, state.Rejected}))
		})
	})
})
