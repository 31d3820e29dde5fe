package doc

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// serveSwaggerJSON serves the registered API description with the host the caller used
func serveSwaggerJSON(c *gin.Context) {
	originalJSON, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read Swagger doc"})
		return
	}

	var swaggerData map[string]interface{}
	if err := json.Unmarshal([]byte(originalJSON), &swaggerData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Swagger doc"})
		return
	}

	if c.Request.Host != "" {
		swaggerData["host"] = c.Request.Host
	}

	modifiedJSON, err := json.Marshal(swaggerData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate modified Swagger doc"})
		return
	}

	c.Data(http.StatusOK, "application/json", modifiedJSON)
}

func serveElements(c *gin.Context) {
	elementsHTML := `<!DOCTYPE html>
<html>
<head>
    <title>Atlas API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
    <style>
        body { margin: 0; padding: 0; height: 100vh; }
        elements-api { height: 100%; }
    </style>
</head>
<body>
    <elements-api apiDescriptionUrl="/swagger/doc.json" router="hash" layout="sidebar"></elements-api>
</body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(elementsHTML))
}

// Init mounts the API description and its viewer
func Init(r *gin.Engine) {
	r.GET("/swagger/doc.json", serveSwaggerJSON)
	r.GET("/docs/*any", serveElements)
}
