package agglo_test

import (
	"fmt"

	"github.com/TrevorS/agglo"
)

func ExampleRun() {
	entities := []agglo.Entity{
		{Name: "A", Attrs: []float64{0, 0}},
		{Name: "B", Attrs: []float64{0, 1}},
		{Name: "C", Attrs: []float64{5, 5}},
	}

	result, err := agglo.Run(entities, 1, agglo.DefaultConfig())
	if err != nil {
		panic(err)
	}
	for i, c := range result.Clusters {
		fmt.Println(i+1, c.Names())
	}
	fmt.Println(result.Distance)
	// Output:
	// 1 [A B]
	// 2 [C]
	// 1
}

func ExampleEngine_ClusterN() {
	entities := []agglo.Entity{
		{Name: "A", Attrs: []float64{0, 0}},
		{Name: "B", Attrs: []float64{0, 1}},
		{Name: "C", Attrs: []float64{5, 5}},
	}

	e, err := agglo.New(entities, agglo.DefaultConfig())
	if err != nil {
		panic(err)
	}
	d, err := e.ClusterN(2)
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Len(), d, e.Labels())
	// Output:
	// 1 41 [0 0 0]
}
