package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/automoto/arena/assets"
	"github.com/automoto/arena/config"
	"github.com/automoto/arena/server/core"
	"github.com/automoto/arena/shared/collision"
	"github.com/automoto/arena/shared/geometry"
)

func main() {
	dir := flag.String("dir", "", "Assets root containing the levels directory (empty = embedded levels)")
	backend := flag.String("backend", config.Collision.Backend, "Spatial index backend (rtree or grid)")
	levelName := flag.String("level", "", "Only report this level (empty = all)")
	probe := flag.String("probe", "", "Circle x,y,r to search and correct against the level")
	flag.Parse()

	var (
		levels map[string]*core.Level
		names  []string
		err    error
	)
	if *dir == "" {
		levels, names, err = core.LoadLevels(assets.FS(), *backend)
	} else {
		levels, names, err = core.LoadAllLevels(*dir, *backend)
	}
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if *levelName != "" {
		if _, ok := levels[*levelName]; !ok {
			log.Fatalf("Unknown level %q (have %s)", *levelName, strings.Join(names, ", "))
		}
		names = []string{*levelName}
	}

	var circle *geometry.CircleBody
	if *probe != "" {
		c, err := parseCircle(*probe)
		if err != nil {
			log.Fatalf("Invalid -probe: %v", err)
		}
		circle = &c
	}

	for _, name := range names {
		level := levels[name]
		fmt.Printf("%s: %dx%d, %d leaves, %d spawn points\n",
			name, level.MapWidth, level.MapHeight, level.Tree.Len(), len(level.Spawns))

		if circle == nil {
			continue
		}
		leaves := level.Tree.SearchWithCircle(*circle)
		for _, leaf := range leaves {
			fmt.Printf("  hit %-4s type=%d side=%s at %v\n",
				leaf.Collider, leaf.Type, collision.CircleToRectangleSide(*circle, leaf.Body()), leaf.Body())
		}
		corrected := level.Tree.CorrectWithCircle(*circle)
		fmt.Printf("  corrected (%.2f, %.2f) -> (%.2f, %.2f)\n", circle.X, circle.Y, corrected.X, corrected.Y)
	}
}

func parseCircle(s string) (geometry.CircleBody, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.CircleBody{}, fmt.Errorf("want x,y,r, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geometry.CircleBody{}, fmt.Errorf("parse %q: %w", p, err)
		}
		v[i] = f
	}
	if v[2] < 0 {
		return geometry.CircleBody{}, fmt.Errorf("negative radius %v", v[2])
	}
	return geometry.NewCircleBody(v[0], v[1], v[2]), nil
}
