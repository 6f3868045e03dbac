// Command gesture-models prints classifier architectures as JSON.
//
// Usage:
//
//	gesture-models -list
//	gesture-models -variant beernet_lite
//	gesture-models -shape 25,4,3 > all-models.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	gestures "github.com/tphakala/go-photodiode-gestures"
	"github.com/tphakala/go-photodiode-gestures/model"
)

const defaultShape = "20,5,3"

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer) error {
	variantName := flag.String("variant", "", "Variant to print (default all)")
	shapeSpec := flag.String("shape", defaultShape, "Model input shape")
	classes := flag.Int("classes", gestures.NumClasses, "Number of output classes")
	list := flag.Bool("list", false, "List variant names and exit")
	flag.Parse()

	if *list {
		for _, v := range model.Variants() {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}

	shape, err := gestures.ParseShape(*shapeSpec)
	if err != nil {
		return err
	}

	variants := model.Variants()
	if *variantName != "" {
		v, err := model.ParseVariant(*variantName)
		if err != nil {
			return err
		}
		variants = []model.Variant{v}
	}

	specs, err := buildSpecs(variants, shape, *classes)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(specs) == 1 {
		return enc.Encode(specs[0])
	}
	return enc.Encode(specs)
}

func buildSpecs(variants []model.Variant, shape gestures.Shape, classes int) ([]*model.Spec, error) {
	specs := make([]*model.Spec, 0, len(variants))
	for _, v := range variants {
		spec, err := model.Build(v, shape, classes)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
