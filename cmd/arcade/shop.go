package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkondratev/pocket-arcade/internal/monetize"
)

var (
	flagAdsEnabled bool
	flagIAPEnabled bool
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Earn and spend coins",
	Long: `Show the coin balance and the product catalog.

Subcommands:
  arcade shop watch-ad       - Watch a (simulated) ad for coins
  arcade shop buy <product>  - Buy a (simulated) product`,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		if store != nil {
			defer store.Close()
			if coins, err := store.Coins(); err == nil {
				fmt.Printf("Balance: %d coins\n\n", coins)
			}
		}

		fmt.Println("Products:")
		for _, p := range monetize.Products() {
			extras := fmt.Sprintf("%d coins", p.Coins)
			if p.Lives > 0 {
				extras += fmt.Sprintf(", %d lives", p.Lives)
			}
			fmt.Printf("  %-14s %-8s %s\n", p.ID, p.Price, extras)
		}
		fmt.Println()
		fmt.Println("Buy one with: arcade shop buy <product>")
	},
}

var watchAdCmd = &cobra.Command{
	Use:   "watch-ad",
	Short: "Watch a simulated rewarded ad for coins",
	Run: func(cmd *cobra.Command, args []string) {
		shop := monetize.NewShop(monetize.Flags{
			AdsEnabled: flagAdsEnabled,
			IAPEnabled: flagIAPEnabled,
		})

		var result monetize.Result
		shop.WatchAd(func(r monetize.Result) { result = r })
		stepShop(shop)
		reportResult(result)
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <product>",
	Short: "Buy a simulated product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		shop := monetize.NewShop(monetize.Flags{
			AdsEnabled: flagAdsEnabled,
			IAPEnabled: flagIAPEnabled,
		})

		var result monetize.Result
		shop.Purchase(args[0], func(r monetize.Result) { result = r })
		stepShop(shop)
		reportResult(result)
	},
}

// stepShop drives the shop's frame clock until all pending operations
// have resolved.
func stepShop(shop *monetize.Shop) {
	for i := 0; i < 100; i++ {
		shop.Update(0.1)
	}
}

func reportResult(result monetize.Result) {
	if !result.Success {
		fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)
		os.Exit(1)
	}

	fmt.Printf("Granted %d coins", result.Coins)
	if result.Lives > 0 {
		fmt.Printf(" and %d lives", result.Lives)
	}
	fmt.Printf(" (transaction %s)\n", result.TransactionID)

	store := openStore()
	if store == nil {
		fmt.Println("Coins not persisted: save database unavailable.")
		return
	}
	defer store.Close()
	if balance, err := store.AddCoins(result.Coins); err == nil {
		fmt.Printf("Balance: %d coins\n", balance)
	}
}

func init() {
	shopCmd.PersistentFlags().BoolVar(&flagAdsEnabled, "ads", true, "Enable the simulated ad provider")
	shopCmd.PersistentFlags().BoolVar(&flagIAPEnabled, "iap", true, "Enable the simulated purchase provider")
	shopCmd.AddCommand(watchAdCmd)
	shopCmd.AddCommand(buyCmd)
}
