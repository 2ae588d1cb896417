package body_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lloydlewis/gutflow/internal/body"
)

var _ = Describe("State", func() {
	var s *body.State

	BeforeEach(func() {
		s = body.New(body.Environment{TemperatureC: 37.0, StressLevel: 2}, body.Conditions{})
	})

	It("starts at the documented resting levels", func() {
		Expect(s.Hormones.Ghrelin).To(Equal(50.0))
		Expect(s.Hormones.Gastrin).To(Equal(10.0))
		Expect(s.Energy).To(BeZero())
		Expect(s.Food).To(BeNil())
	})

	It("clamps out-of-range environment values on construction", func() {
		s = body.New(body.Environment{TemperatureC: 50, StressLevel: 99}, body.Conditions{})
		Expect(s.Env.TemperatureC).To(Equal(body.TempMax))
		Expect(s.Env.StressLevel).To(Equal(body.StressMax))
	})

	It("reflects obesity in leptin and hunger", func() {
		s = body.New(body.Environment{TemperatureC: 37}, body.Conditions{Obesity: true})
		Expect(s.Hormones.Leptin).To(BeNumerically(">", body.DefaultLeptin))
		Expect(s.Hormones.Ghrelin).To(BeNumerically("<", body.DefaultGhrelin))
	})

	Describe("Eat", func() {
		It("copies the meal and fires satiety signals", func() {
			meal := body.Food{Name: "salad", Carbs: 15, Fiber: 8}
			s.Eat(meal)
			Expect(s.Food).NotTo(BeIdenticalTo(&meal))
			Expect(s.Food.Name).To(Equal("salad"))
			Expect(s.Hormones.Ghrelin).To(Equal(25.0))
			Expect(s.Hormones.Insulin).To(Equal(30.0))
			Expect(s.Hunger).To(Equal(2))
		})

		It("never drops hunger or ghrelin below zero", func() {
			s.Hormones.Ghrelin = 5
			s.Hunger = 1
			s.Eat(body.Food{Name: "steak"})
			Expect(s.Hormones.Ghrelin).To(BeNumerically(">=", 0))
			Expect(s.Hunger).To(BeNumerically(">=", 0))
		})
	})

	Describe("Metabolize", func() {
		It("partitions nutrients and credits energy", func() {
			m := s.Metabolize(body.Nutrients{Carbs: 50, Proteins: 20, Fats: 10})
			Expect(m.Glycogen).To(BeNumerically("~", 30.0, 1e-9))
			Expect(m.ProteinUse).To(BeNumerically("~", 16.0, 1e-9))
			Expect(m.FatStorage).To(BeNumerically("~", 7.0, 1e-9))
			Expect(s.Energy).To(BeNumerically("~", m.EnergyAdded, 1e-9))
			Expect(s.Metabolism).NotTo(BeNil())
		})

		It("caps glycogen formation", func() {
			m := s.Metabolize(body.Nutrients{Carbs: 500})
			Expect(m.Glycogen).To(Equal(100.0))
		})
	})

	Describe("RelaxInsulin", func() {
		It("decays a spike toward baseline", func() {
			s.Hormones.Insulin = 90
			for i := 0; i < 200; i++ {
				s.RelaxInsulin()
			}
			Expect(s.Hormones.Insulin).To(BeNumerically("<", 30))
			Expect(s.Hormones.Insulin).To(BeNumerically(">=", body.InsulinBaseline))
		})
	})

	Describe("adjustments", func() {
		It("clamps stress to its range", func() {
			for i := 0; i < 20; i++ {
				s.AdjustStress(1)
			}
			Expect(s.Env.StressLevel).To(Equal(body.StressMax))
			for i := 0; i < 40; i++ {
				s.AdjustStress(-1)
			}
			Expect(s.Env.StressLevel).To(Equal(body.StressMin))
		})

		It("clamps temperature to its range", func() {
			for i := 0; i < 50; i++ {
				s.AdjustTemperature(0.5)
			}
			Expect(s.Env.TemperatureC).To(Equal(body.TempMax))
		})
	})

	Describe("Clone", func() {
		It("is independent of the original", func() {
			s.Eat(body.Food{Name: "pasta", Carbs: 70})
			c := s.Clone()
			c.Food.Carbs = 0
			c.Hormones.Gastrin = 99
			Expect(s.Food.Carbs).To(Equal(70.0))
			Expect(s.Hormones.Gastrin).To(Equal(10.0))
		})
	})
})

var _ = Describe("Microbiome", func() {
	It("keeps the balance normalized to 100", func() {
		m := body.NewMicrobiome()
		m.FiberIntake = 8
		for i := 0; i < 50; i++ {
			m.Tick()
			Expect(m.Good + m.Bad).To(BeNumerically("~", 100.0, 1e-6))
		}
		Expect(m.Good).To(BeNumerically(">", 70))
	})

	It("shifts against good bacteria under antibiotics", func() {
		m := body.NewMicrobiome()
		m.Antibiotic = true
		before := m.Good
		for i := 0; i < 10; i++ {
			m.Tick()
		}
		Expect(m.Good).To(BeNumerically("<", before))
	})

	It("produces more gas with more bad bacteria", func() {
		low := body.Microbiome{Good: 90, Bad: 10}
		high := body.Microbiome{Good: 10, Bad: 90}
		Expect(high.GasProduction()).To(BeNumerically(">", low.GasProduction()))
	})
})

var _ = Describe("Conditions", func() {
	It("toggles by name and round-trips", func() {
		var c body.Conditions
		Expect(c.Toggle(body.CondDiabetes)).To(BeTrue())
		Expect(c.Diabetes).To(BeTrue())
		Expect(c.Toggle(body.CondDiabetes)).To(BeTrue())
		Expect(c.Diabetes).To(BeFalse())
	})

	It("ignores unknown names", func() {
		var c body.Conditions
		Expect(c.Toggle("telepathy")).To(BeFalse())
		Expect(c.Active()).To(BeEmpty())
	})

	It("lists active conditions in a stable order", func() {
		c := body.Conditions{GERD: true, Obesity: true}
		Expect(c.Active()).To(Equal([]string{body.CondGERD, body.CondObesity}))
	})
})
