package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"pokercompare/internal/config"
	"pokercompare/internal/rng"
	"pokercompare/pkg/deck"
	"pokercompare/pkg/poker"
)

// Version is the CLI version
var Version = "v0.0.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()
	setupLogger()

	args := flag.Args()
	if len(args) != poker.HandSize && len(args) != poker.HandSize*2 {
		usage()
		os.Exit(2)
	}

	cards := make([]deck.Card, len(args))
	for i, arg := range args {
		card, err := deck.CardFromString(arg)
		if err != nil {
			logrus.WithError(err).Fatal("invalid card")
		}

		cards[i] = card
	}

	yours, err := poker.New(cards[:poker.HandSize]...)
	if err != nil {
		logrus.WithError(err).Fatal("invalid hand")
	}

	var theirs *poker.Hand
	if len(cards) == poker.HandSize*2 {
		if theirs, err = poker.New(cards[poker.HandSize:]...); err != nil {
			logrus.WithError(err).Fatal("invalid second hand")
		}
	} else {
		theirs = dealRandomHand(yours)
	}

	pterm.Info.Printfln("your hand:  %s", yours)
	pterm.Info.Printfln("their hand: %s", theirs)

	outcome, err := poker.Compare(yours, theirs)
	if err != nil {
		logrus.WithError(err).Fatal("could not compare hands")
	}

	switch outcome {
	case poker.FirstWins:
		pterm.Success.Println("YOU WIN!")
	case poker.SecondWins:
		pterm.Error.Println("YOU LOSE!")
	default:
		pterm.Warning.Println("TIE!")
	}
}

// dealRandomHand deals five cards from the part of the deck not already
// held by the supplied hand
func dealRandomHand(taken *poker.Hand) *poker.Hand {
	var g rng.Generator = rng.Crypto{}
	if seed := config.Instance().Seed; seed != 0 {
		g = rng.Seeded(seed)
		logrus.WithField("seed", seed).Debug("using seeded deal")
	}

	d := deck.New()
	d.Remove(taken.Cards()...)
	d.Shuffle(g)

	cards, err := d.DrawHand(poker.HandSize)
	if err != nil {
		logrus.WithError(err).Fatal("could not deal a hand")
	}

	hand, err := poker.New(cards...)
	if err != nil {
		logrus.WithError(err).Fatal("could not build the dealt hand")
	}

	return hand
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "poker %s\n\n", Version)
	fmt.Fprintln(out, "usage: poker <card> x5 [<card> x5]")
	fmt.Fprintln(out, "cards use two-character notation: ranks 23456789XJQKA, suits SCDH")
	fmt.Fprintln(out, "with five cards, a random opposing hand is dealt from the rest of the deck")
	fmt.Fprintln(out, "\nexample: poker XC 2H 3H 4D AS")
	fmt.Fprintln(out, "example: poker 8C 7D 6S 4D 5S 7S 2S 5D 8S 6C")
}
