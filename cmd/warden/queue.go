package main

import (
	"fmt"

	cli "github.com/urfave/cli/v2"

	"github.com/hazardwatch/hazardwatch/modqueue"
)

var queueCmd = &cli.Command{
	Name:  "queue",
	Usage: "inspect and work the moderation queue",
	Subcommands: []*cli.Command{
		queueListCmd,
		queueStatsCmd,
		queueAssignCmd,
		queueResolveCmd,
	},
}

var queueListCmd = &cli.Command{
	Name:  "list",
	Usage: "list queue items, highest priority first",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "status"},
		&cli.StringFlag{Name: "priority"},
		&cli.IntFlag{Name: "limit", Value: 50},
	},
	Action: func(cctx *cli.Context) error {
		logger := setupLogger()
		svc, err := setupService(cctx, logger)
		if err != nil {
			return err
		}
		filter := modqueue.ListFilter{Limit: cctx.Int("limit")}
		if v := cctx.String("status"); v != "" {
			st := modqueue.Status(v)
			filter.Status = &st
		}
		if v := cctx.String("priority"); v != "" {
			pr := modqueue.Priority(v)
			filter.Priority = &pr
		}
		items, err := svc.Queue.List(cctx.Context, filter)
		if err != nil {
			return err
		}
		for _, item := range items {
			assignee := "-"
			if item.AssignedModerator != nil {
				assignee = *item.AssignedModerator
			}
			fmt.Printf("%s\t%s\t%s\t%s\thazard=%s\n", item.ID, item.Priority, item.Status, assignee, item.HazardID)
		}
		return nil
	},
}

var queueStatsCmd = &cli.Command{
	Name:  "stats",
	Usage: "print queue counts",
	Action: func(cctx *cli.Context) error {
		logger := setupLogger()
		svc, err := setupService(cctx, logger)
		if err != nil {
			return err
		}
		stats, err := svc.GetStats(cctx.Context)
		if err != nil {
			return err
		}
		fmt.Printf("pending: %d\napproved today: %d\nrejected today: %d\n", stats.Pending, stats.ApprovedToday, stats.RejectedToday)
		for pr, n := range stats.PerPriority {
			fmt.Printf("  %s: %d\n", pr, n)
		}
		return nil
	},
}

var queueAssignCmd = &cli.Command{
	Name:  "assign",
	Usage: "assign the next unreviewed item to a moderator",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "moderator", Required: true},
	},
	Action: func(cctx *cli.Context) error {
		logger := setupLogger()
		svc, err := setupService(cctx, logger)
		if err != nil {
			return err
		}
		item, err := svc.Queue.AssignNext(cctx.Context, cctx.String("moderator"))
		if err != nil {
			return err
		}
		if item == nil {
			fmt.Println("no item available")
			return nil
		}
		fmt.Printf("assigned %s (priority %s, hazard %s)\n", item.ID, item.Priority, item.HazardID)
		for _, r := range item.Reasons {
			fmt.Printf("  reason: %s\n", r)
		}
		return nil
	},
}

var queueResolveCmd = &cli.Command{
	Name:  "resolve",
	Usage: "apply a terminal decision (or escalate) on an assigned item",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "item", Required: true},
		&cli.StringFlag{Name: "moderator", Required: true},
		&cli.StringFlag{Name: "action", Required: true, Usage: "approve, reject, or escalate"},
		&cli.StringFlag{Name: "notes"},
	},
	Action: func(cctx *cli.Context) error {
		logger := setupLogger()
		svc, err := setupService(cctx, logger)
		if err != nil {
			return err
		}
		item, hazard, err := svc.ApplyDecision(cctx.Context,
			cctx.String("item"),
			cctx.String("moderator"),
			modqueue.ModAction(cctx.String("action")),
			cctx.String("notes"),
		)
		if err != nil {
			return err
		}
		fmt.Printf("item %s now %s\n", item.ID, item.Status)
		if hazard != nil {
			fmt.Printf("hazard %s now %s\n", hazard.ID, hazard.Status)
		}
		return nil
	},
}
