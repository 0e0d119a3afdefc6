// Automated screening for user-submitted hazard reports.
//
// A submission is scored by independent risk signals (text, location, media,
// duplicate likelihood), the aggregate is scaled by the submitter's trust
// standing, and a configurable decision engine maps the result to one of
// four actions: approve, reject, flag, or review. Flagged and reviewed
// submissions land in the moderation queue (see the modqueue package);
// approvals and rejections transition the hazard record directly (see the
// lifecycle package).
//
// This package re-exports the main types from screening/engine for
// convenience; signal implementations live in screening/signals.
package screening
