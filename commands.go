package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"hotel-desk/console"
	"hotel-desk/controllers"
	"hotel-desk/middleware"
	"hotel-desk/models"
	"hotel-desk/routes"
	"hotel-desk/services"
	"hotel-desk/utils"
)

// withApp opens the store for the duration of fn.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// storeError keeps a persistence failure distinguishable for the exit
// status while showing the operator's wording.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s (%w)", console.Describe(err), err)
}

func runMenu(cmd *cobra.Command, flags *globalFlags) error {
	return withApp(cmd, flags, func(ctx context.Context, a *app) error {
		return console.New(a.store, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
	})
}

func menuCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, flags)
		},
	}
}

func parseRoomNumber(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid room number %q", raw)
	}
	return n, nil
}

func roomCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Manage rooms",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <number> <category> <price>",
		Short: "Add a vacant room",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseRoomNumber(args[0])
			if err != nil {
				return err
			}
			category, err := models.ParseCategory(args[1])
			if err != nil {
				return err
			}
			price, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid price %q", args[2])
			}
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				room, err := a.store.AddRoom(ctx, number, category, price)
				if err != nil && !errors.Is(err, services.ErrPersist) {
					return storeError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Room %d added (%s).\n", room.Number, room.Category)
				return storeError(err)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				console.PrintRooms(cmd.OutOrStdout(), a.store.Rooms())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status <number> <Vacant|UnderMaintenance>",
		Short: "Set a room's status by hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseRoomNumber(args[0])
			if err != nil {
				return err
			}
			status, err := models.ParseRoomStatus(args[1])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				room, err := a.store.SetRoomStatus(ctx, number, status)
				if err != nil && !errors.Is(err, services.ErrPersist) {
					return storeError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Room %d is now %s.\n", room.Number, room.Status)
				return storeError(err)
			})
		},
	})

	return cmd
}

func bookCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "book <guest> <contact> <room> <check-in> <check-out>",
		Short: "Book a vacant room (dates as YYYY-MM-DD)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseRoomNumber(args[2])
			if err != nil {
				return err
			}
			checkIn, err := utils.ParseDate(args[3])
			if err != nil {
				return err
			}
			checkOut, err := utils.ParseDate(args[4])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				if err := a.store.ValidateRoomNumber(number); err != nil {
					return storeError(err)
				}
				b, err := a.store.BookRoom(ctx, args[0], args[1], number, checkIn, checkOut)
				if err != nil && !errors.Is(err, services.ErrPersist) {
					return storeError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Booking %d confirmed, total cost %.2f\n", b.ID, b.TotalCost)
				return storeError(err)
			})
		},
	}
}

func checkoutCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <room>",
		Short: "Check the guest out of an occupied room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseRoomNumber(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				if err := a.store.ValidateRoomNumber(number); err != nil {
					return storeError(err)
				}
				out, err := a.store.CheckOut(ctx, number)
				if err != nil && !errors.Is(err, services.ErrPersist) {
					return storeError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Guest %s checked out of room %d, total cost %.2f\n",
					out.GuestName, out.RoomNumber, out.TotalCost)
				return storeError(err)
			})
		},
	}
}

func bookingCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Inspect bookings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				console.PrintBookings(cmd.OutOrStdout(), a.store.Bookings())
				return nil
			})
		},
	})
	return cmd
}

func guestCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Inspect guests",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List guests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app) error {
				console.PrintGuests(cmd.OutOrStdout(), a.store.Guests())
				return nil
			})
		},
	})
	return cmd
}

func hashTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-token <token>",
		Short: "Print the bcrypt hash to put in HOTEL_API_TOKEN_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := middleware.HashToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func serveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, serve)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	if !a.cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(
		controllers.NewRoomController(a.store),
		controllers.NewBookingController(a.store),
		controllers.NewGuestController(a.store),
		routes.Options{
			CORSOrigins:  a.cfg.Server.CORSOrigins,
			APITokenHash: a.cfg.Server.APITokenHash,
			Gatherer:     a.registry,
		},
	)
	if a.cfg.Server.APITokenHash == "" {
		log.Println("⚠️  HOTEL_API_TOKEN_HASH not set; the API accepts unauthenticated requests")
	}

	addr := ":" + a.cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("✅ Server stopped gracefully")
	return nil
}
