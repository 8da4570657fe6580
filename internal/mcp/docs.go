package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `portfolio serves the projects and presentations shown on a personal CV site.

- Browse with list_projects / get_project and list_presentations / get_presentation.
- create_project, update_project, delete_project and delete_presentation change the live site.
  When the admin gate is enabled they need a bearer token from POST /api/admin/login.
- update_project replaces the whole record; fetch it first and send every field back.
- Dates are YYYY-MM-DD. Presentation titles are bilingual ({"en", "ar"}).

Docs:
- portfolio://docs/guide
- portfolio://docs/data-model
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "portfolio://docs/guide",
		Name:        "guide",
		Title:       "Portfolio tools guide",
		Description: "How to browse and edit portfolio content safely.",
		Content: `# Portfolio tools

1. Call ` + "`list_projects`" + ` to see what is published. Order is the order on the site.
2. To edit, call ` + "`get_project`" + `, change the fields you need, then send the full record to ` + "`update_project`" + `.
3. ` + "`create_project`" + ` assigns the ID. Never invent one.
4. Deleting is permanent; there is no undo.

Errors come back as JSON with a ` + "`code`" + ` field:

- ` + "`PROJECT_NOT_FOUND`" + ` / ` + "`PRESENTATION_NOT_FOUND`" + `: stale ID, list again.
- ` + "`INVALID_INPUT`" + `: a required field is empty or a date is malformed.
- ` + "`UNAUTHORIZED`" + `: log in as admin and retry with the bearer token.
- ` + "`STORAGE_UNAVAILABLE`" + `: nothing was saved; retry later.
`,
	},
	{
		URI:         "portfolio://docs/data-model",
		Name:        "data_model",
		Title:       "Portfolio data model",
		Description: "Fields and constraints for projects and presentations.",
		Content: `# Data model

## Project

| field | notes |
|---|---|
| id | assigned on create |
| title, description, category | required, non-blank |
| status | planning, in-progress, completed, on-hold |
| technologies | list of tags, blanks dropped |
| startDate | required, YYYY-MM-DD |
| endDate | optional, not before startDate |
| team, imageUrl | optional |

## Presentation

| field | notes |
|---|---|
| title | {"en", "ar"}, at least one language |
| type | slides, pdf or link |
| slides | slides type only, at least one |
| pdfUrl | pdf type only |
| externalLink | link type only |
| date | YYYY-MM-DD, defaults to today |
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(context.Context, *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      doc.URI,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
