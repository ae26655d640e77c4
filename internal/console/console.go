// Package console is the interactive text menu over the flight service.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/Domenick1991/infygo/internal/idgen"
	"github.com/Domenick1991/infygo/internal/pricing"
	"github.com/Domenick1991/infygo/internal/service/flights"
)

// errInputClosed ends the menu loop when stdin runs out.
var errInputClosed = errors.New("input closed")

type Console struct {
	service flights.FlightUseCase
	ids     idgen.Generator
	in      *bufio.Scanner
	out     io.Writer
	today   func() time.Time

	// Lines are scanned on a separate goroutine so a blocked read does not
	// outlive ctx.
	startScan sync.Once
	lines     chan string
	scanErr   error
}

type Option func(*Console)

// WithClock overrides how "today" is determined when rejecting past dates.
func WithClock(today func() time.Time) Option {
	return func(c *Console) {
		c.today = today
	}
}

func New(service flights.FlightUseCase, ids idgen.Generator, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		service: service,
		ids:     ids,
		in:      bufio.NewScanner(in),
		out:     out,
		today:   time.Now,
		lines:   make(chan string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.displayMenu()

		choice, err := c.intInput(ctx, "Enter your choice: ")
		if err != nil {
			return c.finish(err)
		}

		switch choice {
		case 1:
			err = c.addFlight(ctx)
		case 2:
			err = c.searchFlights(ctx)
		case 3:
			err = c.displayAllFlights(ctx)
		case 4:
			c.println("Thank you for using InfyGo. Goodbye!")
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func (c *Console) displayMenu() {
	c.println("\n===== InfyGo Airline Booking System =====")
	c.println("1. Add Flight")
	c.println("2. Search Flights")
	c.println("3. Display All Flights")
	c.println("4. Exit")
	c.println("========================================")
}

func (c *Console) addFlight(ctx context.Context) error {
	c.println("\n----- Add New Flight -----")

	id := c.ids.NextID()
	c.println("Generated Flight ID: " + id)

	airline, err := c.stringInput(ctx, "Enter Airlines Name: ")
	if err != nil {
		return err
	}
	source, err := c.stringInput(ctx, "Enter Source: ")
	if err != nil {
		return err
	}
	destination, err := c.stringInput(ctx, "Enter Destination: ")
	if err != nil {
		return err
	}
	fare, err := c.floatInput(ctx, "Enter Fare: ")
	if err != nil {
		return err
	}
	date, err := c.dateInput(ctx, "Enter Journey Date (yyyy-MM-dd): ")
	if err != nil {
		return err
	}
	seats, err := c.intInput(ctx, "Enter Seat Count: ")
	if err != nil {
		return err
	}

	flight := &domain.Flight{
		ID:          id,
		Airline:     airline,
		Source:      source,
		Destination: destination,
		Fare:        fare,
		JourneyDate: date,
		SeatCount:   seats,
	}
	if err := c.service.AddFlight(ctx, flight); err != nil {
		c.println("Error: " + err.Error())
		return nil
	}
	c.println("Flight added successfully!")
	return nil
}

func (c *Console) searchFlights(ctx context.Context) error {
	c.println("\n----- Search Flights -----")

	source, err := c.stringInput(ctx, "Enter Source: ")
	if err != nil {
		return err
	}
	destination, err := c.stringInput(ctx, "Enter Destination: ")
	if err != nil {
		return err
	}
	date, err := c.dateInput(ctx, "Enter Journey Date (yyyy-MM-dd): ")
	if err != nil {
		return err
	}

	found, err := c.service.SearchFlights(ctx, source, destination, date)
	if err != nil {
		c.println("Error: " + err.Error())
		return nil
	}
	if len(found) == 0 {
		c.println("No flights found for the given criteria.")
		return nil
	}

	peak := pricing.IsPeakSeason(date)
	if peak {
		c.println("\nNote: Festival season rates apply (20% fare increase)")
	}
	c.println("\nAvailable Flights:")
	c.printTableHeader()
	for _, f := range found {
		c.printFlight(f, pricing.DisplayFare(f, peak))
	}
	return nil
}

func (c *Console) displayAllFlights(ctx context.Context) error {
	c.println("\n----- All Available Flights -----")

	all, err := c.service.GetAllFlights(ctx)
	if err != nil {
		c.println("Error: " + err.Error())
		return nil
	}
	if len(all) == 0 {
		c.println("No flights available.")
		return nil
	}

	c.printTableHeader()
	for _, f := range all {
		c.printFlight(f, f.Fare)
	}
	return nil
}

func (c *Console) printTableHeader() {
	fmt.Fprintf(c.out, "%-10s %-15s %-10s %-15s %-10s %-12s %-10s\n",
		"Flight ID", "Airlines", "Source", "Destination", "Fare", "Journey Date", "Seats")
	c.println(strings.Repeat("-", 81))
}

func (c *Console) printFlight(f domain.Flight, fare float64) {
	fmt.Fprintf(c.out, "%-10s %-15s %-10s %-15s Rs %-9.2f %-12s %-10d\n",
		f.ID, f.Airline, f.Source, f.Destination, fare, f.JourneyDate.Format(domain.DateLayout), f.SeatCount)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	c.startScan.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.scanErr != nil {
				return "", c.scanErr
			}
			return "", errInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

// scan feeds c.lines until input ends. scanErr is set before the channel is
// closed, so readers see it once they observe the close.
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- c.in.Text()
	}
	c.scanErr = c.in.Err()
}

func (c *Console) stringInput(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		c.println("Input cannot be empty. Please try again.")
	}
}

func (c *Console) intInput(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			c.println("Invalid input. Please enter a number.")
			continue
		}
		if v < 0 {
			c.println("Please enter a positive number.")
			continue
		}
		return v, nil
	}
}

func (c *Console) floatInput(ctx context.Context, prompt string) (float64, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			c.println("Invalid input. Please enter a number.")
			continue
		}
		if v < 0 {
			c.println("Please enter a positive number.")
			continue
		}
		return v, nil
	}
}

// dateInput accepts yyyy-MM-dd dates that are today or later.
func (c *Console) dateInput(ctx context.Context, prompt string) (time.Time, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return time.Time{}, err
		}
		date, err := domain.ParseDate(line)
		if err != nil {
			c.println("Invalid date format. Please use yyyy-MM-dd format.")
			continue
		}
		if date.Before(domain.DateOf(c.today())) {
			c.println("Error: Journey date cannot be in the past. Please enter a current or future date.")
			continue
		}
		return date, nil
	}
}
