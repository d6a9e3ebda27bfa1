package main

type DemoTestClass struct{}

func DemoTestClassName() string { return "Demo\\TestClass" }
