package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/softmesh/hemesh/mesh"
	"github.com/softmesh/hemesh/smoothing"
)

// Parameters obtained from the YAML input file
type SmoothingParameters struct {
	Title              string  `yaml:"Title"`
	Method             string  `yaml:"Method"` // Laplacian, Immediate or HC
	SmoothingFactor    float64 `yaml:"SmoothingFactor"`
	Alpha              float64 `yaml:"Alpha"`
	Beta               float64 `yaml:"Beta"`
	Iterations         int     `yaml:"Iterations"`
	DisplacementCutoff float64 `yaml:"DisplacementCutoff"` // when > 0, run to convergence instead of Iterations
	PreserveBoundary   bool    `yaml:"PreserveBoundary"`
}

func (sp *SmoothingParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SmoothingParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= Method\n", sp.Method)
	fmt.Printf("%8.5f\t\t= SmoothingFactor\n", sp.SmoothingFactor)
	fmt.Printf("%8.5f\t\t= Alpha\n", sp.Alpha)
	fmt.Printf("%8.5f\t\t= Beta\n", sp.Beta)
	fmt.Printf("[%d]\t\t\t= Iterations\n", sp.Iterations)
	fmt.Printf("%8.5f\t\t= DisplacementCutoff\n", sp.DisplacementCutoff)
	fmt.Printf("[%v]\t\t\t= PreserveBoundary\n", sp.PreserveBoundary)
}

// NewSmoother constructs the smoothing variant the parameters select,
// validating the numeric parameters in the process
func (sp *SmoothingParameters) NewSmoother(m *mesh.Mesh) (s smoothing.Smoother, err error) {
	switch sp.Method {
	case "Laplacian", "":
		s, err = smoothing.NewSimultaneousLaplacian(m, sp.SmoothingFactor)
	case "Immediate":
		s, err = smoothing.NewImmediateLaplacian(m, sp.SmoothingFactor)
	case "HC":
		s, err = smoothing.NewHC(m, sp.Alpha, sp.Beta)
	default:
		err = fmt.Errorf("unknown smoothing method: [%s]", sp.Method)
	}
	return
}
