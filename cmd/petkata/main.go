package main

import (
	"flag"
	"fmt"
	"os"

	"go.lepak.sg/collections/bag"
	"go.lepak.sg/collections/numlist"
	"go.lepak.sg/collections/seq"
)

var (
	topK = flag.Int("k", 3,
		"how many of the most common pet types to show")
	owner = flag.String("owner", "Bob Smith",
		"person whose pets are listed by name")
	sep = flag.String("sep", " & ",
		"separator for pet names")
	ifEmpty = flag.Int("default", 0,
		"value reported for min/max/average when there are no pets")
)

type petType string

type pet struct {
	kind petType
	name string
	age  int
}

type person struct {
	first, last string
	pets        []pet
}

func (p person) named(name string) bool {
	return p.first+" "+p.last == name
}

func (p person) getPets() []pet {
	return p.pets
}

func people() []person {
	return []person{
		{"Mary", "Smith", []pet{{"CAT", "Tabby", 2}}},
		{"Bob", "Smith", []pet{{"CAT", "Dolly", 3}, {"DOG", "Spot", 4}}},
		{"Ted", "Smith", []pet{{"DOG", "Spot", 4}}},
		{"Jake", "Snake", []pet{{"SNAKE", "Serpy", 1}}},
		{"Barry", "Bird", []pet{{"BIRD", "Tweety", 2}}},
		{"Terry", "Turtle", []pet{{"TURTLE", "Speedy", 1}}},
		{"Harry", "Hamster", []pet{{"HAMSTER", "Fuzzy", 1}, {"HAMSTER", "Wuzzy", 1}}},
		{"John", "Doe", nil},
	}
}

func main() {
	flag.Parse()

	if *topK < 0 {
		fmt.Fprintln(os.Stderr, "-k must not be negative")
		os.Exit(2)
	}

	folks := people()
	pets := seq.FlatCollect(folks, person.getPets)

	someone, ok := seq.DetectWith(folks, person.named, *owner)
	if ok {
		names := seq.Collect(someone.pets, func(p pet) string { return p.name })
		fmt.Printf("%s's pets: %s\n", *owner, seq.MakeString(names, *sep))
	} else {
		fmt.Printf("%s not found\n", *owner)
	}

	counts := bag.CountBy(pets, func(p pet) petType { return p.kind }).ToImmutable()
	fmt.Println("pet types:", counts)

	fmt.Printf("top %d:\n", *topK)
	for _, o := range counts.TopOccurrences(*topK) {
		fmt.Printf("  %-8s %d\n", o.Element, o.Count)
	}

	fmt.Println("by type:")
	for _, group := range seq.GroupAndOrderBy(pets, func(p pet) petType { return p.kind }) {
		names := seq.Collect(group, func(p pet) string { return p.name })
		fmt.Printf("  %-8s %s\n", group[0].kind, seq.MakeString(names, ", "))
	}

	ages := numlist.CollectInt(pets, func(p pet) int { return p.age })
	stats := ages.SummaryStatistics()

	fmt.Println("ages:", ages)
	fmt.Println("unique ages:", ages.ToSet())
	fmt.Printf("count=%d sum=%d min=%d max=%d average=%.3f\n",
		stats.Count, ages.Sum(),
		ages.MinIfEmpty(*ifEmpty), ages.MaxIfEmpty(*ifEmpty),
		ages.AverageIfEmpty(float64(*ifEmpty)))
	fmt.Println("all older than 0:", ages.AllSatisfy(func(i int) bool { return i > 0 }))
	fmt.Println("any aged 0:", ages.AnySatisfy(func(i int) bool { return i == 0 }))
	fmt.Println("none negative:", ages.NoneSatisfy(func(i int) bool { return i < 0 }))
}
