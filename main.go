package main

import "github.com/budgetwise/expense-tracker/cmd"

func main() {
	cmd.Execute()
}
