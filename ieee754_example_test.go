// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"encoding/json"
	"fmt"
)

func ExampleFloat64() {
	v := FromFloat64(1.5)
	fmt.Println(v, v.GoString())
	fmt.Println(v.Exponent(), v.Significand())
	fmt.Println(v.NextUp().Sub(v).Eq(v.ULP()))

	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json: %s\n", data)

	JSONMode = JSONModeBits
	data, err = json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json bits: %s\n", data)
	JSONMode = JSONModeCompact
	// Output:
	// 1.5 ieee754.Float64FromBits(0x3ff8000000000000)
	// 0 1.5
	// true
	// json: 1.5
	// json bits: "0x3ff8000000000000"
}

func ExampleFloat80() {
	third := Float80FromInt(1).Div(Float80FromInt(3))
	se, m := third.Bits()
	fmt.Printf("se=0x%04x m=0x%016x\n", se, m)
	fmt.Println(third.Mul(Float80FromInt(3)).Eq(Float80FromInt(1)))

	pseudo := Float80FromBits(0, 1<<63)
	fmt.Println(pseudo.IsCanonical(), pseudo.Eq(MinNormal80))
	// Output:
	// se=0x3ffd m=0xaaaaaaaaaaaaaaab
	// true
	// false true
}

func ExampleFloat32FromIntExact() {
	if _, ok := Float32FromIntExact(1 << 24); ok {
		fmt.Println("16777216 fits")
	}
	if _, ok := Float32FromIntExact(1<<24 + 1); !ok {
		fmt.Println("16777217 does not")
	}
	// Output:
	// 16777216 fits
	// 16777217 does not
}
