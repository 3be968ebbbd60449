// Profiling:
// go build ./profile/remap
// go tool pprof -http=":8000" -nodefraction=0.001 ./remap mem.pprof

package main

import (
	"github.com/edwinsyarief/entitymap"
	"github.com/pkg/profile"
)

type link struct {
	target entitymap.Entity
}

func (l *link) MapEntities(m *entitymap.Mapper) error {
	l.target = m.GetOrAlloc(l.target)
	return nil
}

func main() {
	rounds := 50
	sessions := 1000
	refs := 100
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, sessions, refs)
	p.Stop()
}

func run(rounds, sessions, refs int) {
	for range rounds {
		source := entitymap.NewWorld(refs)
		foreign := source.CreateEntities(refs)
		links := make([]link, refs)
		for i := range links {
			links[i].target = foreign[i]
		}

		destination := entitymap.NewWorld(refs)
		for range sessions {
			batch := make([]link, refs)
			copy(batch, links)
			m := entitymap.NewEntityMap()
			entitymap.WithMapper(m, destination, func(_ *entitymap.World, mp *entitymap.Mapper) error {
				for i := range batch {
					if err := batch[i].MapEntities(mp); err != nil {
						return err
					}
				}
				return nil
			})
		}
	}
}
