package handlers

// @title Web Shop API
// @version 1.0
// @description Serverless CRUD API for shops and their products backed by a document store

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @tag.name shops
// @tag.description Shop management operations

// @tag.name products
// @tag.description Product management operations
