package data_test

import (
	"fmt"

	"github.com/matzehuels/statebars/pkg/chart/data"
)

func ExamplePrepare() {
	records := []data.Record{
		{State: "Texas", Abbrev: "TX", Count: 4000, MaleCount: 3500, Population: 29000000},
		{State: "Vermont", Abbrev: "VT", Count: 100, MaleCount: 70, Population: 620000},
	}
	for _, e := range data.Prepare(records, data.DefaultWeights) {
		fmt.Printf("%s %.2f = %.2f + %.2f\n", e.Name, e.Per100k, e.Male, e.Female)
	}
	// Output:
	// Vermont 16.13 = 11.29 + 4.84
	// Texas 13.79 = 12.07 + 1.72
}
