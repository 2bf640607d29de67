/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/softmesh/hemesh/InputParameters"
	"github.com/softmesh/hemesh/mesh"
	"github.com/softmesh/hemesh/readfiles"
	"github.com/softmesh/hemesh/smoothing"
)

type ModelSmooth struct {
	SoupFile   string
	ParamFile  string
	OutputFile string
	Verbose    bool
}

// SmoothCmd represents the smooth command
var SmoothCmd = &cobra.Command{
	Use:   "smooth",
	Short: "Build a half-edge mesh from a polygon soup and relax its vertices",
	Long: `
Reads a polygon soup file, builds the half-edge mesh, runs the configured
smoothing variant and optionally writes the relaxed soup back out,

hemesh smooth -F mesh.soup -I params.yaml -o smoothed.soup`,
	Run: func(cmd *cobra.Command, args []string) {
		msm := &ModelSmooth{}
		msm.SoupFile, _ = cmd.Flags().GetString("soupFile")
		msm.ParamFile, _ = cmd.Flags().GetString("inputFile")
		msm.OutputFile, _ = cmd.Flags().GetString("outputFile")
		msm.Verbose, _ = cmd.Flags().GetBool("verbose")
		if len(msm.SoupFile) == 0 {
			err := cmd.Usage()
			if err != nil {
				panic(err)
			}
			os.Exit(1)
		}
		RunSmooth(msm)
	},
}

func init() {
	rootCmd.AddCommand(SmoothCmd)
	SmoothCmd.Flags().StringP("soupFile", "F", "", "polygon soup file to build the mesh from")
	SmoothCmd.Flags().StringP("inputFile", "I", "", "YAML input file with smoothing parameters")
	SmoothCmd.Flags().StringP("outputFile", "o", "", "write the smoothed soup to this file")
	SmoothCmd.Flags().BoolP("verbose", "v", false, "print file reading progress")
}

func RunSmooth(msm *ModelSmooth) {
	var (
		sp  = &InputParameters.SmoothingParameters{}
		err error
	)
	// Defaults produce a gentle simultaneous Laplacian pass
	sp.Title = "Default"
	sp.Method = "Laplacian"
	sp.SmoothingFactor = 0.5
	sp.Iterations = 10
	sp.PreserveBoundary = true
	if len(msm.ParamFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(msm.ParamFile); err != nil {
			panic(fmt.Errorf("unable to read input file %s\n %s", msm.ParamFile, err))
		}
		if err = sp.Parse(data); err != nil {
			panic(err)
		}
	}
	sp.Print()

	soup := readfiles.ReadSoup(msm.SoupFile, msm.Verbose)
	var m *mesh.Mesh
	if m, err = mesh.New(soup); err != nil {
		panic(err)
	}
	fmt.Printf("Mesh: %d vertices, %d half-edges, %d base edges, %d faces, %d boundary vertices\n",
		len(m.Vertices), len(m.Edges), len(m.BaseEdges), len(m.Faces), m.BoundaryVertexCount())

	var s smoothing.Smoother
	if s, err = sp.NewSmoother(m); err != nil {
		panic(err)
	}

	var displacement float64
	if sp.DisplacementCutoff > 0 {
		var iterations int
		if iterations, displacement, err = smoothing.SmoothUntilConvergence(
			s, sp.DisplacementCutoff, sp.PreserveBoundary); err != nil {
			panic(err)
		}
		fmt.Printf("Converged after %d iterations, final displacement %8.6f\n",
			iterations, displacement)
	} else {
		if displacement, err = smoothing.Smooth(s, sp.Iterations, sp.PreserveBoundary); err != nil {
			panic(err)
		}
		fmt.Printf("Ran %d iterations, final displacement %8.6f\n",
			sp.Iterations, displacement)
	}

	box := m.Bounds()
	fmt.Printf("Bounds: [%8.5f,%8.5f] -> [%8.5f,%8.5f]\n",
		box.XMin[0], box.XMin[1], box.XMax[0], box.XMax[1])

	if len(msm.OutputFile) != 0 {
		readfiles.WriteSoup(msm.OutputFile, m.Soup())
		fmt.Printf("Wrote smoothed soup to %s\n", msm.OutputFile)
	}
}
