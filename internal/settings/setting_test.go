package settings_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/voxgeo/internal/settings"
)

var _ = Describe("Setting", func() {
	var s *settings.Setting

	BeforeEach(func() {
		s = settings.NewSetting(settings.KindSlider, 4)
	})

	It("replays the current value before Subscribe returns", func() {
		var got []float64
		s.Subscribe(func(v float64) { got = append(got, v) })
		Expect(got).To(Equal([]float64{4}))
	})

	It("does not replay with NoReplay", func() {
		calls := 0
		s.Subscribe(func(float64) { calls++ }, settings.NoReplay())
		Expect(calls).To(BeZero())
		Expect(s.Subscribers()).To(Equal(1))
	})

	It("replays the unset sentinel", func() {
		u := settings.NewSetting("custom", settings.Unset)
		var got float64
		u.Subscribe(func(v float64) { got = v })
		Expect(settings.IsUnset(got)).To(BeTrue())
	})

	It("notifies subscribers in registration order with the triggered value", func() {
		var order []string
		var values []float64
		for _, id := range []string{"a", "b", "c"} {
			id := id
			s.Subscribe(func(v float64) {
				order = append(order, id)
				values = append(values, v)
			}, settings.NoReplay())
		}

		s.Trigger(9)

		Expect(order).To(Equal([]string{"a", "b", "c"}))
		Expect(values).To(Equal([]float64{9, 9, 9}))
		Expect(s.Value()).To(Equal(9.0))
	})

	It("does not call subscribers added during a notification", func() {
		lateCalls := 0
		s.Subscribe(func(float64) {
			s.Subscribe(func(float64) { lateCalls++ }, settings.NoReplay())
		}, settings.NoReplay())

		s.Trigger(1)
		Expect(lateCalls).To(BeZero())
		Expect(s.Subscribers()).To(Equal(2))

		s.Trigger(2)
		Expect(lateCalls).To(Equal(1))
		Expect(s.Subscribers()).To(Equal(3))
	})

	It("allows a subscriber to trigger another setting", func() {
		other := settings.NewSetting(settings.KindSlider, 0)
		var seen float64
		other.Subscribe(func(v float64) { seen = v }, settings.NoReplay())
		s.Subscribe(func(v float64) { other.Trigger(v * 2) }, settings.NoReplay())

		s.Trigger(5)
		Expect(seen).To(Equal(10.0))
	})
})
