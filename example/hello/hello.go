// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hello greets someone described by its flags.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/yeetrun/baner/pkg/baner"
	"tailscale.com/util/must"
)

var (
	nameFlag = baner.Long("name", "The name to say hi to", baner.String())
	ageFlag  = baner.Long("age", "The age of the person", baner.Number())
	petsFlag = baner.Long("pets", "Names of your pets", baner.VariableList(baner.String()))
	typeFlag = baner.Long("type", "Type of owner", baner.OneOf("human", "alien"))
	helpFlag = baner.Both("h", "help", "This help text", baner.Empty())

	helloParser = baner.New(nameFlag, ageFlag, petsFlag, typeFlag, helpFlag)
)

func sayHi(name string, age float64, pets []string, kind string) {
	fmt.Printf("Hi, %s! Congrats on being %v years old.\n", name, age)
	if kind == "alien" {
		fmt.Println("Welcome to earth!")
	}
	if len(pets) > 0 {
		fmt.Printf("Wow, you had %d pets. I bet %s were good pets to have\n", len(pets), strings.Join(pets, ", "))
	}
}

// describeOutcome renders one parsed flag for the help dump.
func describeOutcome(o baner.FlagOutcome) string {
	state := "missing"
	if o.Present {
		state = "present"
	}
	if v, ok := o.Result.Value(); ok {
		return fmt.Sprintf("  %s (%s): %v", o.Spec.Spelling(), state, v)
	}
	return fmt.Sprintf("  %s (%s): %s", o.Spec.Spelling(), state, o.Result.Message())
}

func main() {
	program := helloParser.Parse(os.Args[1:])

	if program.Present(helpFlag.Name()) {
		fmt.Println("Provide a name via --name and age via --age")
		fmt.Println(helloParser.Help())
		fmt.Println("Supported flags:")
		for _, name := range program.Order {
			fmt.Println(describeOutcome(program.Flags[name]))
		}
		return
	}
	if errs := baner.AllErrors(program); len(errs) > 0 {
		fmt.Println("Errors:")
		fmt.Println(strings.Join(errs, "\n"))
		os.Exit(1)
	}
	if missing := baner.AllMissing(program, helpFlag.Name()); len(missing) > 0 {
		fmt.Println("Missing flags:")
		fmt.Println(strings.Join(missing, "\n"))
		os.Exit(1)
	}

	// Every flag is present and coerced at this point.
	sayHi(
		must.Get(nameFlag.Value(program)),
		must.Get(ageFlag.Value(program)),
		must.Get(petsFlag.Value(program)),
		must.Get(typeFlag.Value(program)),
	)
}
