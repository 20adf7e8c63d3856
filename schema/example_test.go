package schema_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/finality/schema"
)

// ExampleBuild materializes a declared hierarchy and inspects what the
// seal protects.
func ExampleBuild() {
	doc := `
classes:
  - name: Task
    members:
      - name: run
        final: true
  - name: CronTask
    bases: [Task]
`
	f, err := schema.Load(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	classes, err := schema.Build(schema.NewCatalog(), f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, cls := range classes {
		fmt.Printf("%s sealed=%v\n", cls.Name(), cls.FinalNames())
	}
	// Output:
	// Task sealed=[run]
	// CronTask sealed=[run]
}

// ExampleVerify vets a document that both extends and violates a sealed
// contract; one run reports everything.
func ExampleVerify() {
	doc := `
classes:
  - name: Codec
    members:
      - name: encode
        final: true
  - name: BrokenCodec
    bases: [Codec]
    members:
      - name: encode
  - name: SafeCodec
    bases: [Codec]
`
	f, err := schema.Load(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rep, err := schema.Verify(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("clean:", rep.Clean())
	fmt.Println("accepted:", rep.Accepted)
	for _, v := range rep.Violations {
		fmt.Println("violation:", v.Err)
	}
	// Output:
	// clean: false
	// accepted: [Codec SafeCodec]
	// violation: schema: class "BrokenCodec": core: class "BrokenCodec" overrides final member "encode" declared by "Codec"
}
