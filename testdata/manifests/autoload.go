package main

func ClassMap() map[string]string {
	return map[string]string{
		"TestClass": "testdata/classes/TestClass.go",
	}
}

func PrefixesPsr4() map[string][]string {
	return map[string][]string{
		"Demo\\": {"testdata/classes/Demo"},
	}
}
