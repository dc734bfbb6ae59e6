package convert_test

import (
	"fmt"

	"github.com/katalvlaran/calchub/convert"
)

func ExampleTable_Convert() {
	tab, _ := convert.Default().Table(convert.Currency)

	res := tab.Convert(2, "USD", "INR")
	fmt.Printf("%v %s = %.2f %s\n", res.Amount, res.From, res.Converted, res.To)

	res = tab.Convert(1, "JPY", "CAD")
	fmt.Println(res.Available, res.Message)
	// Output:
	// 2 USD = 167.00 INR
	// false Rate for this specific pair is updating. Try USD to INR!
}
