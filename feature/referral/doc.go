// Package referral implements the customer referral program.
//
// Homeowners sign up as advocates, refer leads to sales reps, and earn
// tiered payouts as those leads move through the pipeline: $25 at signup,
// $50 when a lead qualifies, $150 when the deal closes. Payouts start
// pending; marking one paid moves its amount from the advocate's pending
// to paid earnings, exactly once.
//
// Lead status transitions are judged against the stored record, so
// re-asserting a status never double-pays.
//
// # Components
//
//   - Repository: GORM persistence for advocates, leads, payouts, reps.
//   - Service: Pipeline rules, payout creation, earnings bookkeeping.
//   - Handler: Exposes the HTTP endpoints under /referral.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET/POST /referral/advocates, GET/PUT /referral/advocates/:id
//   - GET/POST /referral/leads, GET/PUT /referral/leads/:id
//   - GET /referral/payouts, PUT /referral/payouts/:id
//   - GET /referral/reps, /referral/stats, /referral/dashboard
package referral
