package lewis_test

import (
	"fmt"

	"github.com/deepprinciple/golewis/lewis"
)

// ExampleFind resolves formaldehyde: the solver promotes the C-O sigma
// bond to a carbonyl and leaves every atom neutral.
func ExampleFind() {
	elements := []string{"C", "H", "H", "O"}
	adj := [][]int{
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	}

	res, err := lewis.Find(elements, adj)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	best := res.Matrices[0]
	fmt.Println("structures:", len(res.Matrices))
	fmt.Println("C-O order:", best.At(0, 3))
	fmt.Println("O lone electrons:", best.At(3, 3))
	// Output:
	// structures: 1
	// C-O order: 2
	// O lone electrons: 4
}

// ExampleFind_charged resolves the formate anion, placing the extra
// electron on one oxygen.
func ExampleFind_charged() {
	elements := []string{"H", "C", "O", "O"}
	adj := [][]int{
		{0, 1, 0, 0},
		{1, 0, 1, 1},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	}

	res, err := lewis.Find(elements, adj, lewis.WithCharge(-1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	best := res.Matrices[0]
	anions := 0
	for _, f := range best.FormalCharges([]int{1, 4, 6, 6}) {
		if f == -1 {
			anions++
		}
	}
	fmt.Println("electrons:", best.TotalElectrons())
	fmt.Println("anions:", anions)
	// Output:
	// electrons: 18
	// anions: 1
}
