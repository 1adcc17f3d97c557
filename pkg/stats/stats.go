// Package stats collects integer samples and summarises them.
package stats

import (
	"fmt"
	"math"
)

// Statistic is a list of integer samples. The zero value is an empty
// list ready to use.
type Statistic struct {
	values []int
	sum    int64
}

func (s *Statistic) Add(n int) {
	s.values = append(s.values, n)
	s.sum += int64(n)
}

func (s *Statistic) Len() int {
	return len(s.values)
}

func (s *Statistic) Sum() int64 {
	return s.sum
}

// Values returns a copy of the samples in insertion order.
func (s *Statistic) Values() []int {
	return append([]int(nil), s.values...)
}

// Mean returns the arithmetic mean, or NaN if there are no samples.
func (s *Statistic) Mean() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	return float64(s.sum) / float64(len(s.values))
}

// StdDev returns the population standard deviation, or NaN if there are
// no samples.
func (s *Statistic) StdDev() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	mean := s.Mean()
	var acc float64
	for _, v := range s.values {
		d := float64(v) - mean
		acc += d * d
	}
	return math.Sqrt(acc / float64(len(s.values)))
}

func (s *Statistic) String() string {
	return fmt.Sprintf("n=%d mean=%.2f sd=%.2f", s.Len(), s.Mean(), s.StdDev())
}
