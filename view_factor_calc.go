package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/mat"
)

type SurfaceData struct {
	Surfaces []*Surface `json:"surfaces"`
}

/*
Run the view factor calculation.

    Args:
        surface_data_path (str): path or URL of the surface definition JSON file
        output_data_dir (str): output folder
        gp: number of Gauss-Legendre points per segment direction
*/
func run(surface_data_path string, output_data_dir string, gp int) {

	// create the output directory
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	// read the surface definition JSON file
	log.Printf("Load surface data from `%s`", surface_data_path)
	var sd SurfaceData
	if len(surface_data_path) >= 4 && surface_data_path[0:4] == "http" {
		resp, err := http.Get(surface_data_path)
		if err != nil {
			log.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			log.Fatal(err)
		}
		if err := json.Unmarshal(body, &sd); err != nil {
			log.Fatal(err)
		}
	} else {
		file, err := os.Open(surface_data_path)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		bytes, err := ioutil.ReadAll(file)
		if err != nil {
			log.Fatal(err)
		}
		if err := json.Unmarshal(bytes, &sd); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("Calculate view factors for %d surfaces (gp=%d)", len(sd.Surfaces), gp)
	f, rows, err := calc_view_factor_matrix(sd.Surfaces, gp)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("F = %.6f\n", mat.Formatted(f, mat.Prefix("    ")))
	log.Printf("max reciprocity residual: %.3e", max_reciprocity_residual(rows))

	// save the results
	result_path := filepath.Join(output_data_dir, "view_factors.csv")
	log.Printf("Save view factor results to `%s`", result_path)
	out, err := os.Create(result_path)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(rows, out); err != nil {
		log.Fatal(err)
	}
}

func main() {
	var surface_data string
	flag.StringVar(&surface_data, "input", "example/surfaces_example.json", "surface definition JSON file (path or URL)")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "output folder")

	var gp int
	flag.IntVar(&gp, "gp", get_gp_default(), "number of Gauss-Legendre points per segment direction")

	flag.Parse()

	// Print flag values
	fmt.Printf("surface_data: %s\n", surface_data)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("gp: %d\n", gp)

	start := time.Now()

	run(surface_data, output_data_dir, gp)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
