package main

import (
	"context"
	"log"

	"github.com/mohamedsham20017/ecommerce-website/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("storefront exited: %v", err)
	}
}
