package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"

	"github.com/cardroom/cardgames/bots"
	"github.com/cardroom/cardgames/cards"
	"github.com/cardroom/cardgames/game"
	"github.com/cardroom/cardgames/game/events"
	"github.com/cardroom/cardgames/hands"
)

func main() {
	variantFlag := flag.String("variant", "texas", "texas, golden, bull or landlord")
	seedFlag := flag.Int64("seed", 0, "deal seed (0 uses the clock)")
	roundsFlag := flag.Int("rounds", 3, "number of rounds to deal")
	dumpFlag := flag.Bool("dump", false, "dump the raw event stream after each round")
	flag.Parse()

	variant := hands.Variant(*variantFlag)
	if !variant.IsValid() {
		pterm.Error.Printfln("unknown variant %q", *variantFlag)
		os.Exit(1)
	}

	rng := cards.NewTimeRNG()
	if *seedFlag != 0 {
		rng = cards.NewSeededRNG(*seedFlag)
	}

	if err := run(variant, rng, *roundsFlag, *dumpFlag); err != nil {
		pterm.Error.Printfln("dealer stopped: %v", err)
		os.Exit(1)
	}
}

func run(variant hands.Variant, rng cards.RNG, rounds int, dump bool) error {
	pterm.DefaultHeader.WithFullWidth().Printfln("Dealer — %s", variant)

	participants := []*game.Participant{
		{ID: "you", Chips: 1000},
		{ID: "ash", Chips: 1000},
		{ID: "kim", Chips: 1000},
	}
	policies := map[string]bots.DecisionPolicy{
		"you": bots.RandomCaller{RNG: rng},
		"ash": bots.RandomCaller{RNG: rng},
		"kim": bots.StrengthCaller{RNG: rng, Threshold: strengthThreshold(variant)},
	}

	session, err := game.NewSession(game.DefaultRules(variant), participants, game.WithRNG(rng))
	if err != nil {
		return err
	}

	log := events.NewLog()
	session.OnEvent(log.Append)

	tallies := map[string]*game.PlayerTally{}
	unlocked := map[string][]string{}
	for _, p := range participants {
		tallies[p.ID] = &game.PlayerTally{}
	}
	session.OnEvent(func(ev events.Event) {
		settled, ok := ev.(events.RoundSettled)
		if !ok {
			return
		}
		for _, id := range settled.WinnerIDs {
			tallies[id].Wins++
		}
	})

	for i := 0; i < rounds; i++ {
		if err := playRound(session, policies, variant, rng); err != nil {
			return err
		}
		printStacks(participants)
		for _, p := range participants {
			tallies[p.ID].Chips = p.Chips
			for _, id := range game.UnlockedAchievements(*tallies[p.ID], unlocked[p.ID]) {
				unlocked[p.ID] = append(unlocked[p.ID], id)
				pterm.Success.Printfln("%s unlocked %q", p.ID, id)
			}
		}
		if dump {
			litter.D(log.ByRound(session.Round.ID))
		}
		time.Sleep(200 * time.Millisecond)
	}
	return nil
}

func strengthThreshold(variant hands.Variant) hands.Category {
	switch variant {
	case hands.Golden:
		return hands.GoldenStraight
	case hands.Bull:
		return hands.BullBull
	default:
		return hands.OnePair
	}
}

func playRound(session *game.Session, policies map[string]bots.DecisionPolicy, variant hands.Variant, rng cards.RNG) error {
	if err := session.StartRound(); err != nil {
		return err
	}

	if variant == hands.Landlord {
		return playBidding(session, rng)
	}

	for session.Round.Street.IsBetting() {
		if err := playStreet(session, policies); err != nil {
			return err
		}
		if winner, ok := session.Round.EarlyWinner(); ok {
			settlement, err := session.SettleEarlyWin()
			if err != nil {
				return err
			}
			pterm.Success.Printfln("%s takes the pot of %d uncontested", winner.ID, settlement.PotAwarded)
			return nil
		}
		if err := session.AdvanceStreet(); err != nil {
			return err
		}
		if len(session.Board) > 0 {
			pterm.Info.Printfln("board: %s", session.Board.String())
		}
	}

	settlement, results, err := session.Showdown()
	if err != nil {
		return err
	}
	for _, result := range results {
		marker := "  "
		if result.IsWinner {
			marker = pterm.LightGreen("► ")
		}
		pterm.Printfln("%s%s shows %s", marker, result.ParticipantID, result.Rank.Label())
	}
	pterm.Success.Printfln("pot of %d to %v", settlement.PotAwarded, settlement.WinnerIDs)
	return nil
}

// playStreet lets every live participant speak once, then runs settle-up
// passes where anyone still owing chips calls or folds, until the bets
// level out.
func playStreet(session *game.Session, policies map[string]bots.DecisionPolicy) error {
	if err := playPass(session, policies, false); err != nil {
		return err
	}
	for !session.Round.IsStreetComplete() {
		if _, ok := session.Round.EarlyWinner(); ok {
			return nil
		}
		if err := playPass(session, policies, true); err != nil {
			return err
		}
	}
	return nil
}

func playPass(session *game.Session, policies map[string]bots.DecisionPolicy, settleUp bool) error {
	for _, p := range session.Round.ActiveParticipants() {
		if _, ok := session.Round.EarlyWinner(); ok {
			return nil
		}
		view, err := bots.ViewFor(session, p.ID)
		if err != nil {
			return err
		}
		action := policies[p.ID].Decide(view)
		if settleUp && view.ToCall == 0 {
			// Matched seats just check through so the action keeps moving.
			action = game.Action{Type: game.ActionCheck}
		}
		if err := session.Apply(p.ID, action); err != nil {
			return err
		}
		pterm.Printfln("  %s %ss (pot %d)", p.ID, action.Type, session.Round.Pot)
	}
	return nil
}

func playBidding(session *game.Session, rng cards.RNG) error {
	for _, p := range session.Participants {
		bid := int(rng() * 3)
		if err := session.PlaceBid(p.ID, bid); err != nil {
			return err
		}
		pterm.Printfln("  %s bids %d", p.ID, bid)
	}
	if session.LandlordID == "" {
		pterm.Warning.Println("everyone passed, redealing")
		return nil
	}
	landlord, err := session.Round.Participant(session.LandlordID)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("%s is the landlord (x%d) holding %d cards",
		landlord.ID, session.Multiplier, len(landlord.Hand))
	return nil
}

func printStacks(participants []*game.Participant) {
	line := ""
	for _, p := range participants {
		line += fmt.Sprintf("%s: %d  ", p.ID, p.Chips)
	}
	pterm.Info.Printfln("stacks — %s", line)
}
