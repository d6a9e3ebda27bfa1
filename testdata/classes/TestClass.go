package main

type RootTestClass struct{}

func RootTestClassName() string { return "TestClass" }
