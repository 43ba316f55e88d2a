// Package recognition loads peer recognition events from the rewards API.
//
// The [Client] pages through the remote event list with a fixed page size,
// stops at the first empty page, filters the collected records to receivers
// in one region, and flattens the nested API payload into [Recognition]
// values the ticker renders.
//
// # Pagination
//
// Page requests are issued strictly sequentially: the skip offset advances
// by the page size after each non-empty page, so page order and skip
// accounting are always correct. The upstream API offers no bound on page
// count, so [Client] enforces its own cap and fails the load with
// [errors.ErrPageLimit] when it is reached.
//
// # Failure semantics
//
// Any page failure (transport error, non-2xx status, or a response with
// success=false) aborts the whole load with a single *errors.FeedError.
// No partial results are returned.
//
// # Basic Usage
//
//	client, err := recognition.NewClient(cfg.API.BaseURL, cfg.API.AccessToken,
//		recognition.WithRegion(cfg.Feed.RegionCode),
//		recognition.WithLookback(cfg.Feed.Lookback()),
//	)
//
//	records, err := client.Load(ctx)
package recognition
