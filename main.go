package main

import (
	"fmt"
	"log"

	"github.com/ebfe/scard"

	"github.com/cardtools/gpinspect/pkg/gp"
	"github.com/cardtools/gpinspect/pkg/iso7816"
)

func main() {
	// --- 1. Hardware Setup ---
	ctx, card := connectToCard()

	defer func() {
		if err := ctx.Release(); err != nil {
			log.Printf("Warning: Failed to release context: %v", err)
		}
	}()

	defer func() {
		if err := card.Disconnect(scard.LeaveCard); err != nil {
			log.Printf("Warning: Failed to disconnect card: %v", err)
		}
	}()

	// --- 2. Logic Setup ---
	client := iso7816.NewClient(card)

	// --- 3. Execution Flow ---
	raw, err := fetchCPLC(client)
	if err != nil {
		log.Fatalf("Could not retrieve CPLC data: %v", err)
	}

	record, err := gp.ParseRecord(raw)
	if err != nil {
		log.Fatalf("Could not parse CPLC data (%X): %v", raw, err)
	}

	fmt.Println()
	fmt.Print(record.Dump())

	fmt.Println("\nDecoded fields:")
	for _, name := range gp.FieldNames() {
		fmt.Printf("    - %s: %s\n", name, gp.HumanReadableValue(name, record.Field(name)))
	}
}

// connectToCard handles the PC/SC context establishment and reader connection.
func connectToCard() (*scard.Context, *scard.Card) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		log.Fatalf("Error establishing context: %s", err)
	}

	readers, err := ctx.ListReaders()
	if err != nil || len(readers) == 0 {
		if relErr := ctx.Release(); relErr != nil {
			log.Printf("Warning: Failed to release context during error handling: %v", relErr)
		}
		log.Fatal("No smart card reader found.")
	}

	fmt.Printf(">> Using reader: %s\n", readers[0])

	// Force T=0 or T=1 to avoid "Parameter Incorrect" errors (Error 57)
	card, err := ctx.Connect(readers[0], scard.ShareShared, scard.ProtocolT0|scard.ProtocolT1)
	if err != nil {
		if relErr := ctx.Release(); relErr != nil {
			log.Printf("Warning: Failed to release context during error handling: %v", relErr)
		}
		log.Fatalf("Error connecting to card: %s", err)
	}

	return ctx, card
}

// fetchCPLC issues GET DATA for the CPLC tag. Global Platform cards answer
// on CLA 80; a few operating systems expose the object on the
// interindustry class instead, so CLA 00 is tried as a fallback.
func fetchCPLC(client *iso7816.Client) ([]byte, error) {
	for _, cla := range []byte{0x80, 0x00} {
		fmt.Printf(">> GET DATA 9F7F (CLA %02X)...\n", cla)

		resp, err := client.Send(iso7816.GetData(cla, gp.TagCPLC))
		if err != nil {
			return nil, err
		}

		if resp.Status.IsSuccess() {
			fmt.Printf(">> Received %d bytes\n", len(resp.Data))
			return resp.Data, nil
		}

		fmt.Printf(">> Card answered: %s\n", resp.Status.Verbose())
	}

	return nil, fmt.Errorf("card does not expose CPLC data")
}
