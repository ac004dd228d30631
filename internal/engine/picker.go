package engine

import (
	"sync"

	"github.com/brianvoe/gofakeit/v6"
)

// Picker chooses one element of a non-empty slice.
type Picker interface {
	Pick(options []string) string
}

// FakerPicker picks uniformly using a gofakeit Faker.
// Faker is not safe for concurrent use, so calls are serialised.
type FakerPicker struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewFakerPicker seeds a Faker. Seed 0 asks gofakeit for a crypto-random seed;
// any other value gives a reproducible sequence.
func NewFakerPicker(seed int64) *FakerPicker {
	return &FakerPicker{faker: gofakeit.New(seed)}
}

func (p *FakerPicker) Pick(options []string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.faker.RandomString(options)
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func(options []string) string

func (f PickerFunc) Pick(options []string) string { return f(options) }
