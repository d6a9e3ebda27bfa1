package main

type DemoDeepTestClass struct{}

func DemoDeepTestClassName() string { return "Demo\\Deep\\TestClass" }
