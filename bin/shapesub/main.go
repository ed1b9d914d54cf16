package main

import (
	"log"

	"github.com/USEPA/rsigserver-sub000/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
