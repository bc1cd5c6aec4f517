package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/kbukum/querykit/dataset"
	"github.com/kbukum/querykit/query"
)

// Paging used by the pets-page query.
const (
	pageSize = 2
	page     = 2
)

type namedQuery struct {
	name        string
	description string
	run         func(ctx context.Context, r *Runner) (any, error)
}

var catalogue = []namedQuery{
	{"owner-pets", "every owner/pet pair, flattened", ownerPets},
	{"distinct-species", "species in first-seen order", distinctSpecies},
	{"species-popularity", "species ranked by number of pets", speciesPopularity},
	{"owners-by-age", "owners ordered by age, then name", ownersByAge},
	{"oldest-pet", "the oldest pet", oldestPet},
	{"total-pet-age", "sum of all pet ages", totalPetAge},
	{"first-cat-owner", "first owner with a cat", firstCatOwner},
	{"only-parrot-owner", "the single owner with a parrot", onlyParrotOwner},
	{"same-age-pets", "pairs of pets sharing an age", sameAgePets},
	{"pets-page", fmt.Sprintf("page %d of pet names, %d per page", page, pageSize), petsPage},
	{"reading-stats", "count, sum and mean of sensor readings", readingStats},
	{"set-algebra", "union, intersection and difference of the two sets", setAlgebra},
}

func findQuery(name string) (namedQuery, bool) {
	i := slices.IndexFunc(catalogue, func(q namedQuery) bool { return q.name == name })
	if i < 0 {
		return namedQuery{}, false
	}
	return catalogue[i], true
}

func hasSpecies(species string) func(dataset.Owner) bool {
	return func(o dataset.Owner) bool {
		return slices.ContainsFunc(o.Pets, func(p dataset.Pet) bool { return p.Species == species })
	}
}

func petAge(p dataset.Pet) int { return p.Age }

func ownerPets(ctx context.Context, r *Runner) (any, error) {
	pairs := query.SelectManyWith(r.owners(ctx, "owner-pets"),
		func(o dataset.Owner, _ int) *query.Sequence[dataset.Pet] { return query.FromSlice(o.Pets) },
		func(o dataset.Owner, p dataset.Pet) string { return o.Name + "/" + p.Name })
	return pairs.ToSlice()
}

func distinctSpecies(ctx context.Context, r *Runner) (any, error) {
	species := query.Select(r.pets(ctx, "distinct-species"), func(p dataset.Pet) string { return p.Species })
	return query.Distinct(species).ToSlice()
}

func speciesPopularity(ctx context.Context, r *Runner) (any, error) {
	groups, err := query.GroupBy(r.pets(ctx, "species-popularity"), func(p dataset.Pet) string { return p.Species })
	if err != nil {
		return nil, err
	}
	ranked, err := query.OrderByDescending(groups.Groups(), func(g query.Grouping[string, dataset.Pet]) int {
		return len(g.Values)
	})
	if err != nil {
		return nil, err
	}
	return query.Select(ranked, func(g query.Grouping[string, dataset.Pet]) string {
		return fmt.Sprintf("%s=%d", g.Key, len(g.Values))
	}).ToSlice()
}

func ownersByAge(ctx context.Context, r *Runner) (any, error) {
	byName, err := query.OrderBy(r.owners(ctx, "owners-by-age"), func(o dataset.Owner) string { return o.Name })
	if err != nil {
		return nil, err
	}
	// OrderBy is stable, so sorting by name first breaks age ties by name.
	byAge, err := query.OrderBy(byName, func(o dataset.Owner) int { return o.Age })
	if err != nil {
		return nil, err
	}
	return query.Select(byAge, func(o dataset.Owner) string {
		return fmt.Sprintf("%s (%d)", o.Name, o.Age)
	}).ToSlice()
}

func oldestPet(ctx context.Context, r *Runner) (any, error) {
	p, err := r.pets(ctx, "oldest-pet").MaxFunc(func(a, b dataset.Pet) int {
		return query.DefaultCompare(a.Age, b.Age)
	})
	if err != nil {
		return nil, err
	}
	return p.Name, nil
}

func totalPetAge(ctx context.Context, r *Runner) (any, error) {
	return query.SumBy(r.pets(ctx, "total-pet-age"), petAge)
}

func firstCatOwner(ctx context.Context, r *Runner) (any, error) {
	o, err := r.owners(ctx, "first-cat-owner").FirstOrDefaultWhere(hasSpecies("cat"), dataset.Owner{Name: "nobody"})
	if err != nil {
		return nil, err
	}
	return o.Name, nil
}

func onlyParrotOwner(ctx context.Context, r *Runner) (any, error) {
	o, err := r.owners(ctx, "only-parrot-owner").SingleWhere(hasSpecies("parrot"))
	if err != nil {
		return nil, err
	}
	return o.Name, nil
}

func sameAgePets(ctx context.Context, r *Runner) (any, error) {
	pets := r.pets(ctx, "same-age-pets")
	type pair struct{ a, b dataset.Pet }
	pairs := query.Join(pets, pets, petAge, petAge, func(a, b dataset.Pet) pair { return pair{a, b} }).
		Where(func(p pair) bool { return p.a.Name < p.b.Name })
	return query.Select(pairs, func(p pair) string {
		return fmt.Sprintf("%s & %s (%d)", p.a.Name, p.b.Name, p.a.Age)
	}).ToSlice()
}

func petsPage(ctx context.Context, r *Runner) (any, error) {
	names := query.Select(r.pets(ctx, "pets-page"), func(p dataset.Pet) string { return p.Name })
	return names.Skip((page - 1) * pageSize).Take(pageSize).ToSlice()
}

type readingSummary struct {
	Count   int
	Sum     float64
	Average float64
}

func (s readingSummary) String() string {
	return fmt.Sprintf("count=%d sum=%g mean=%g", s.Count, s.Sum, s.Average)
}

func readingStats(_ context.Context, r *Runner) (any, error) {
	values := query.FromSlice(r.ds.ReadingValues())
	var (
		s   readingSummary
		err error
	)
	if s.Count, err = values.Count(); err != nil {
		return nil, err
	}
	if s.Sum, err = query.SumValues(values); err != nil {
		return nil, err
	}
	if s.Average, err = query.AverageValues(values); err != nil {
		return nil, err
	}
	return s, nil
}

type setSummary struct {
	Union     []int
	Intersect []int
	Except    []int
}

func (s setSummary) String() string {
	return fmt.Sprintf("union=%v intersect=%v except=%v", s.Union, s.Intersect, s.Except)
}

func setAlgebra(_ context.Context, r *Runner) (any, error) {
	left := query.FromSlice(r.ds.Sets.Left)
	right := query.FromSlice(r.ds.Sets.Right)
	var (
		s   setSummary
		err error
	)
	if s.Union, err = query.Union(left, right).ToSlice(); err != nil {
		return nil, err
	}
	if s.Intersect, err = query.Intersect(left, right).ToSlice(); err != nil {
		return nil, err
	}
	if s.Except, err = query.Except(left, right).ToSlice(); err != nil {
		return nil, err
	}
	return s, nil
}
