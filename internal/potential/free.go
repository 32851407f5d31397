package potential

import "fmt"

// Free is the zero potential.
type Free struct{}

func NewFree() *Free { return &Free{} }

func (f *Free) Validate() error            { return nil }
func (f *Free) Evaluate(x float64) float64 { return 0 }

func (f *Free) GetParams() map[string]float64 { return map[string]float64{} }

func (f *Free) SetParam(name string, value float64) error {
	return fmt.Errorf("unknown param: %s", name)
}
