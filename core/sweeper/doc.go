// Package sweeper runs the periodic expiry sweep as an explicit background
// task owned by the process's composition root.
//
// The sweeper holds a handle to anything that can end inactive sessions in
// bulk and fires at a fixed interval until its context is canceled. Missed
// ticks are not persisted: if the process is down, sessions simply accumulate
// inactivity until the first tick after restart.
//
//	sw := sweeper.New(mgr, sweeper.WithInterval(time.Minute), sweeper.WithLogger(log))
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(sw.Run(ctx))
package sweeper
