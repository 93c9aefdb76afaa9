// @title           ReviewDeck API
// @version         1.0
// @description     Widget configuration, review moderation and embed payload API.
// @contact.name    ReviewDeck
// @contact.email   support@reviewdeck.io
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "reviewdeck_backend/internal/app"

func main() {
	app.Run()
}
