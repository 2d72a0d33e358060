package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/miniplatformer/common"
)

func main() {
	debug := flag.Bool("debug", false, "log gameplay events and show TPS")
	tuningPath := flag.String("tuning", "", "tuning yaml on disk (defaults to prefabs/tuning.yaml, then the embedded copy)")
	watch := flag.Bool("watch", false, "hot-reload tuning and patrol scripts when they change on disk")
	scale := flag.Float64("scale", 1, "window scale factor")
	flag.Parse()

	if *scale <= 0 {
		log.Fatalf("invalid -scale %v", *scale)
	}

	ebiten.SetWindowSize(int(common.BaseWidth**scale), int(common.BaseHeight**scale))
	ebiten.SetWindowTitle("Mini Platformer")
	ebiten.SetTPS(common.TargetTPS)

	game, err := NewGame(*tuningPath, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("close: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
