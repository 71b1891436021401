package time_test

import (
	"fmt"

	"github.com/CoffeeTableEspresso/time.yasl/lib/time"
)

func ExampleParse() {
	t, err := time.Parse("2021-06-01T12:00:00.750+05:00")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t)
	fmt.Println(t.Millisecond())

	_, err = time.Parse("2021-06-01T12:00:00Z-garbage")
	fmt.Println(err)
	// Output:
	// 2021-06-01T07:00:00+0000
	// 750
	// unable to parse date
}

func ExampleTime_Sub() {
	a := time.Make(2021, 3, 15, 10, 30, 1, 0)
	b := time.Make(2021, 3, 15, 10, 30, 0, 500)
	fmt.Println(a.Sub(b))
	fmt.Println(b.Sub(a))
	// Output:
	// timedelta(0.500)
	// timedelta(-0.500)
}

func ExampleTimeDelta_Sub() {
	five, two := time.FromSeconds(5), time.FromSeconds(2)
	fmt.Println(five.Sub(two))
	fmt.Println(five.Add(two).Neg())
	// Output:
	// timedelta(-3.000)
	// timedelta(-7.000)
}
