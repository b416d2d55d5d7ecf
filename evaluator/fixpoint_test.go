package evaluator_test

import (
	"maps"
	"math/rand"
	"slices"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/ucircuit/circuit"
	"github.com/ezrec/ucircuit/evaluator"
)

var _ = Describe("Evaluator fixpoint", func() {
	var (
		ps *circuit.Parser
		ev *evaluator.Evaluator
	)

	load := func(lines ...string) {
		prog, err := ps.Parse(strings.NewReader(strings.Join(lines, "\n")))
		Expect(err).NotTo(HaveOccurred())
		ev.Load(prog)
	}

	BeforeEach(func() {
		ps = &circuit.Parser{}
		ev = evaluator.NewEvaluator()
	})

	Context("with a mix of resolvable and unresolvable wires", func() {
		lines := []string{
			"123 -> x",
			"456 -> y",
			"x AND y -> d",
			"x OR y -> e",
			"x LSHIFT 2 -> f",
			"y RSHIFT 2 -> g",
			"NOT x -> h",
			"NOT y -> i",
			"p -> q",
			"q -> p",
			"nowhere OR x -> m",
			"m -> n",
		}

		It("should resolve the same table for any instruction order", func() {
			load(lines...)
			_, err := ev.Run()
			Expect(err).NotTo(HaveOccurred())
			want := maps.Collect(ev.Values())

			Expect(want).To(HaveLen(8))
			Expect(want).To(HaveKeyWithValue("d", uint16(72)))
			Expect(want).To(HaveKeyWithValue("h", uint16(65412)))

			rnd := rand.New(rand.NewSource(7))
			for range 32 {
				shuffled := slices.Clone(lines)
				rnd.Shuffle(len(shuffled), func(i, j int) {
					shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
				})

				ev = evaluator.NewEvaluator()
				load(shuffled...)
				_, err := ev.Run()
				Expect(err).NotTo(HaveOccurred())
				Expect(maps.Collect(ev.Values())).To(Equal(want), strings.Join(shuffled, "; "))
			}
		})

		It("should terminate leaving cyclic and missing wires unresolved", func() {
			load(lines...)
			passes, err := ev.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(passes).To(BeNumerically("<=", len(lines)+1))
			Expect(slices.Collect(ev.Unresolved())).To(ConsistOf("p", "q", "m", "n"))
		})

		It("should not change anything when run again", func() {
			load(lines...)
			_, err := ev.Run()
			Expect(err).NotTo(HaveOccurred())
			before := ev.Resolved()

			progress, err := ev.Pass()
			Expect(err).NotTo(HaveOccurred())
			Expect(progress).To(BeFalse())

			passes, err := ev.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(passes).To(Equal(1))
			Expect(ev.Resolved()).To(Equal(before))
		})
	})

	Context("with a mutual cycle only", func() {
		It("should leave both wires unset", func() {
			load("a -> b", "b -> a")
			passes, err := ev.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(passes).To(Equal(1))
			Expect(ev.Report("a")).To(Equal("a = UNSET"))
			Expect(ev.Report("b")).To(Equal("b = UNSET"))
		})
	})

	Context("with a wire set twice", func() {
		It("should reject the second assignment", func() {
			Expect(ev.SetValue("a", 1)).To(Succeed())
			err := ev.SetValue("a", 2)
			var dup *evaluator.ErrWireDuplicate
			Expect(err).To(BeAssignableToTypeOf(dup))
			Expect(ev.Report("a")).To(Equal("a = 1"))
		})
	})
})
