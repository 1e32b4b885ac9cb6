package settings_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/voxgeo/internal/settings"
)

func declarations() []settings.Node {
	return []settings.Node{
		{
			Tag: "settings",
			Children: []settings.Node{
				{Tag: "SLIDER", Name: "radius", Attrs: map[string]string{"min": "1", "max": "40", "value": "10"}},
				{Tag: "label", Name: "caption"},
				{Tag: "slider", Name: "speed"},
			},
		},
	}
}

var _ = Describe("Registry", func() {
	var reg *settings.Registry

	BeforeEach(func() {
		reg = settings.NewRegistry()
		Expect(reg.Discover(declarations())).To(Succeed())
	})

	Describe("Discover", func() {
		It("registers recognized controls and skips the rest", func() {
			Expect(reg.Names()).To(Equal([]string{"radius", "speed"}))
		})

		It("applies slider attributes and defaults", func() {
			s, ok := reg.Setting("radius")
			Expect(ok).To(BeTrue())
			Expect(s.Kind()).To(Equal(settings.KindSlider))
			Expect(s.Value()).To(Equal(10.0))

			c, _ := reg.Control("speed")
			slider := c.(*settings.Slider)
			Expect(slider.Min()).To(Equal(0.0))
			Expect(slider.Max()).To(Equal(100.0))
			Expect(slider.Setting().Value()).To(Equal(0.0))
		})

		It("lets the last control registered under a name win", func() {
			first, _ := reg.Setting("radius")
			Expect(reg.Discover(declarations())).To(Succeed())
			second, _ := reg.Setting("radius")
			Expect(second).NotTo(BeIdenticalTo(first))
		})

		It("rejects malformed attributes", func() {
			bad := []settings.Node{{Tag: "settings", Children: []settings.Node{
				{Tag: "slider", Name: "r", Attrs: map[string]string{"min": "lots"}},
			}}}
			err := settings.NewRegistry().Discover(bad)
			Expect(err).To(MatchError(settings.ErrInvalidControl))

			var cerr *settings.ControlError
			Expect(errors.As(err, &cerr)).To(BeTrue())
			Expect(cerr.Name).To(Equal("r"))
		})

		It("registers nothing when a later declaration fails", func() {
			fresh := settings.NewRegistry()
			mixed := []settings.Node{{Tag: "settings", Children: []settings.Node{
				{Tag: "slider", Name: "good", Attrs: map[string]string{"max": "5"}},
				{Tag: "slider", Name: "bad", Attrs: map[string]string{"max": "oops"}},
			}}}
			Expect(fresh.Discover(mixed)).To(MatchError(settings.ErrInvalidControl))
			Expect(fresh.Names()).To(BeEmpty())
			_, ok := fresh.Control("good")
			Expect(ok).To(BeFalse())

			before, _ := reg.Setting("radius")
			Expect(reg.Discover(mixed)).NotTo(Succeed())
			after, _ := reg.Setting("radius")
			Expect(after).To(BeIdenticalTo(before))
			Expect(reg.Names()).To(Equal([]string{"radius", "speed"}))
		})

		It("clamps the declared value into range", func() {
			fresh := settings.NewRegistry()
			Expect(fresh.Discover([]settings.Node{{Tag: "settings", Children: []settings.Node{
				{Tag: "slider", Name: "high", Attrs: map[string]string{"max": "40", "value": "3037000500"}},
				{Tag: "slider", Name: "low", Attrs: map[string]string{"min": "2", "max": "40", "value": "-7"}},
				{Tag: "slider", Name: "frac", Attrs: map[string]string{"max": "40", "value": "12.9"}},
			}}})).To(Succeed())

			for name, want := range map[string]float64{"high": 40, "low": 2, "frac": 12} {
				s, _ := fresh.Setting(name)
				Expect(s.Value()).To(Equal(want), name)
			}
		})

		It("uses registered handlers for new tags", func() {
			r := settings.NewRegistry()
			r.RegisterHandler("Toggle", settings.HandlerFunc(func(n settings.Node) (settings.Control, error) {
				return settings.NewSlider(settings.Node{Attrs: map[string]string{"max": "1"}})
			}))
			Expect(r.Discover([]settings.Node{{Children: []settings.Node{{Tag: "toggle", Name: "grid"}}}})).To(Succeed())
			Expect(r.Names()).To(ConsistOf("grid"))
		})
	})

	Describe("Subscribe", func() {
		It("replays by default", func() {
			var got []float64
			Expect(reg.Subscribe("radius", func(v float64) { got = append(got, v) })).To(Succeed())
			Expect(got).To(Equal([]float64{10}))
		})

		It("fails for unknown names without side effects", func() {
			called := false
			err := reg.Subscribe("nonexistent", func(float64) { called = true })
			Expect(err).To(MatchError(settings.ErrUnknownSetting))
			Expect(called).To(BeFalse())
			Expect(reg.Names()).To(Equal([]string{"radius", "speed"}))
		})
	})

	Describe("Dispatch", func() {
		var got []float64

		BeforeEach(func() {
			got = nil
			Expect(reg.Subscribe("radius", func(v float64) { got = append(got, v) }, settings.NoReplay())).To(Succeed())
		})

		It("truncates and clamps slider input", func() {
			Expect(reg.Dispatch(settings.ChangeEvent{Name: "radius", Raw: "7.9"})).To(Succeed())
			Expect(reg.Dispatch(settings.ChangeEvent{Name: "radius", Raw: "400"})).To(Succeed())
			Expect(reg.Dispatch(settings.ChangeEvent{Name: "radius", Raw: "-3"})).To(Succeed())
			Expect(got).To(Equal([]float64{7, 40, 1}))
		})

		It("rejects garbage input without notifying", func() {
			Expect(reg.Dispatch(settings.ChangeEvent{Name: "radius", Raw: "wide"})).NotTo(Succeed())
			Expect(got).To(BeEmpty())
		})

		It("fails for unknown controls", func() {
			Expect(reg.Dispatch(settings.ChangeEvent{Name: "zoom", Raw: "1"})).To(MatchError(settings.ErrUnknownSetting))
		})

		It("nudges sliders by step within bounds", func() {
			c, _ := reg.Control("radius")
			slider := c.(*settings.Slider)
			Expect(slider.Nudge(1)).To(BeTrue())
			Expect(slider.Nudge(100)).To(BeTrue())
			Expect(slider.Nudge(1)).To(BeFalse())
			Expect(got).To(Equal([]float64{11, 40}))
		})
	})

	Describe("Pump", func() {
		It("applies events in order until the channel closes", func() {
			var got []float64
			Expect(reg.Subscribe("radius", func(v float64) { got = append(got, v) }, settings.NoReplay())).To(Succeed())

			events := make(chan settings.ChangeEvent, 4)
			events <- settings.ChangeEvent{Name: "radius", Raw: "5"}
			events <- settings.ChangeEvent{Name: "missing", Raw: "1"}
			events <- settings.ChangeEvent{Name: "radius", Raw: "8"}
			close(events)

			Expect(reg.Pump(context.Background(), events)).To(Succeed())
			Expect(got).To(Equal([]float64{5, 8}))
		})

		It("stops when the context is done", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()
			err := reg.Pump(ctx, make(chan settings.ChangeEvent))
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})
})
