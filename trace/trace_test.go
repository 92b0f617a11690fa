package trace_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smdupor/CacheSim/trace"
)

// collect drains a scanner into a slice.
func collect(input string) []trace.Event {
	s := trace.NewScanner(strings.NewReader(input))
	var events []trace.Event
	for s.Scan() {
		events = append(events, s.Event())
	}
	Expect(s.Err()).NotTo(HaveOccurred())
	return events
}

var _ = Describe("Scanner", func() {
	It("should parse read and write events", func() {
		events := collect("r ff0\nw 1000\nr 0\n")

		Expect(events).To(Equal([]trace.Event{
			{Op: trace.OpRead, Addr: 0xff0},
			{Op: trace.OpWrite, Addr: 0x1000},
			{Op: trace.OpRead, Addr: 0x0},
		}))
	})

	It("should tolerate extra whitespace", func() {
		events := collect("  r   400edbd0 \n\tw\t400edbd4\n")

		Expect(events).To(Equal([]trace.Event{
			{Op: trace.OpRead, Addr: 0x400edbd0},
			{Op: trace.OpWrite, Addr: 0x400edbd4},
		}))
	})

	It("should skip blank and malformed lines", func() {
		events := collect("\nr\nnot-hex zz\nr 10\n   \nw 20\n")

		Expect(events).To(Equal([]trace.Event{
			{Op: trace.OpRead, Addr: 0x10},
			{Op: trace.OpWrite, Addr: 0x20},
		}))
	})

	It("should pass unrecognized operations through", func() {
		events := collect("x 30\nr 40\n")

		Expect(events).To(HaveLen(2))
		Expect(events[0].Op).To(Equal(trace.Op('x')))
		Expect(events[0].Addr).To(Equal(uint64(0x30)))
	})

	It("should return no events for empty input", func() {
		Expect(collect("")).To(BeEmpty())
	})
})
