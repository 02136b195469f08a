// Command exceptdemo drives the engine through a sequence of
// end-to-end scenarios, demonstrating the try/catch/finally hierarchy,
// rethrow, return-across-finally, assertions, and concurrent use.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/orizon-lang/exceptrt/class"
	"github.com/orizon-lang/exceptrt/except"
)

var networkError = class.Define("NetworkError", class.Exception)

func main() {
	concurrency := flag.Int("concurrency", 8, "number of concurrent workers for the fan-out scenario")
	flag.Parse()

	fmt.Println("exceptrt demo")
	fmt.Println("=============")

	runBasicCatch()
	runMultipleCatchOrdering()
	runFinallyAlwaysRuns()
	runRethrow()
	runReturnAcrossNestedFinally()
	runAssertion()
	runOutOfMemory()
	runSignalAsException()

	if err := runConcurrentFanOut(*concurrency); err != nil {
		fmt.Fprintln(os.Stderr, "fan-out scenario failed:", err)
		os.Exit(1)
	}

	fmt.Println("\nall scenarios completed")
}

func runBasicCatch() {
	fmt.Println("\n1. basic catch")

	except.Try(func() {
		except.Throw(networkError, "connection refused")
	}).Catch(networkError, func(e *except.Exception) {
		fmt.Println("   caught:", e.Message())
	}).Run()
}

func runMultipleCatchOrdering() {
	fmt.Println("\n2. first matching catch wins")

	except.Try(func() {
		except.Throw(networkError, nil)
	}).Catch(class.Throwable, func(e *except.Exception) {
		fmt.Println("   handled by the Throwable clause, not a more specific one")
	}).Catch(networkError, func(e *except.Exception) {
		fmt.Println("   this clause never runs")
	}).Run()
}

func runFinallyAlwaysRuns() {
	fmt.Println("\n3. finally runs whether or not something was thrown")

	except.Try(func() {
		fmt.Println("   try: nothing thrown")
	}).Finally(func() {
		fmt.Println("   finally: ran anyway")
	})
}

func runRethrow() {
	fmt.Println("\n4. rethrow preserves the original site")

	except.Try(func() {
		except.Try(func() {
			except.Throw(networkError, "dns failure")
		}).Catch(networkError, func(e *except.Exception) {
			fmt.Println("   caught, logging, then rethrowing:", e.Message())
			except.Rethrow(e)
		}).Run()
	}).Catch(networkError, func(e *except.Exception) {
		fmt.Println("   re-caught at the outer try, same site:", e.Message())
	}).Run()
}

func runReturnAcrossNestedFinally() {
	fmt.Println("\n5. return propagates outward through nested finally blocks")

	result := func() int {
		v, did := except.Try(func() {
			inner, innerDid := except.Try(func() {
				except.Return(99)
			}).Finally(func() {
				fmt.Println("   inner finally")
			})
			if innerDid {
				except.Return(inner)
			}
		}).Finally(func() {
			fmt.Println("   outer finally")
		})

		if did {
			return v.(int)
		}

		return -1
	}()

	fmt.Println("   returned:", result)
}

func runAssertion() {
	fmt.Println("\n6. a failed assertion is just another catchable exception")

	except.Try(func() {
		except.Check(1+1 == 3, class.FailedAssertion, "arithmetic is broken today")
	}).Catch(class.FailedAssertion, func(e *except.Exception) {
		fmt.Println("   caught:", e.Message())
	}).Run()
}

func runOutOfMemory() {
	fmt.Println("\n7. an allocation ceiling throws OutOfMemoryError")

	old := except.MaxAllocation
	except.MaxAllocation = 64
	defer func() { except.MaxAllocation = old }()

	except.Try(func() {
		except.AllocOrThrow(1 << 20)
	}).Catch(class.OutOfMemoryError, func(e *except.Exception) {
		fmt.Println("   caught:", e.Message())
	}).Run()
}

// runSignalAsException dereferences a genuinely invalid address inside
// a try. Without fault.go's runtime/debug.SetPanicOnFault this would
// crash the process outright; here it surfaces as an ordinary
// SegmentationFault, caught the same way a thrown exception would be.
func runSignalAsException() {
	fmt.Println("\n8. an invalid memory access is delivered as SegmentationFault")

	except.Try(func() {
		p := (*int)(unsafe.Pointer(uintptr(1) << 40))
		_ = *p
	}).Catch(class.SegmentationFault, func(e *except.Exception) {
		fmt.Println("   caught:", e.Message())
	}).Run()
}

// runConcurrentFanOut demonstrates the engine under concurrent use: N
// workers each run their own Try/Catch independently, grounded on
// cmd/orizon/pkg/utils/graph.go's errgroup-plus-semaphore fan-out.
func runConcurrentFanOut(concurrency int) error {
	fmt.Println("\n9. concurrent workers each see only their own exceptions")

	g, ctx := errgroup.WithContext(context.Background())
	semaphore := make(chan struct{}, concurrency)

	var mu sync.Mutex
	results := make([]string, 16)

	for i := 0; i < len(results); i++ {
		i := i

		g.Go(func() error {
			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-semaphore }()

			outcome := "no exception"

			except.Try(func() {
				if i%3 == 0 {
					except.Throw(networkError, i)
				}
			}).Catch(networkError, func(e *except.Exception) {
				outcome = fmt.Sprintf("caught %d", e.Data().(int))
			}).Run()

			mu.Lock()
			results[i] = outcome
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, r := range results {
		fmt.Printf("   worker %2d: %s\n", i, r)
	}

	return nil
}
