package random

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PickerTestSuite struct {
	suite.Suite
}

func TestPickerTestSuite(t *testing.T) {
	suite.Run(t, new(PickerTestSuite))
}

func (s *PickerTestSuite) TestSameSeedSamePicks() {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 20; i++ {
		s.Equal(a.Intn(10), b.Intn(10))
	}
}

func (s *PickerTestSuite) TestIntnRange() {
	p := New(nil)

	for i := 0; i < 100; i++ {
		n := p.Intn(3)
		s.GreaterOrEqual(n, 0)
		s.Less(n, 3)
	}

	s.Equal(0, p.Intn(0))
	s.Equal(0, p.Intn(-4))
}
