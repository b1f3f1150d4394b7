package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_BuiltinsAreLoaded(t *testing.T) {
	tm := NewTemplateManager()

	assert.ElementsMatch(t,
		[]string{TemplateDocumentAdded, TemplateNotificationGeneric},
		tm.TemplateNames())
}

func TestTemplateManager_RenderDocumentAdded(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateDocumentAdded, TemplateData{
		"subject":       "Nouveau document: Facture mars",
		"resident_name": "Alice Martin",
		"intro_text":    "Un nouveau document a été ajouté à votre espace résident.",
		"document_type": "Facture",
		"amount":        "1250.50",
		"date":          "15/03/2025",
		"dashboard_url": "http://127.0.0.1:8000/resident-dashboard/",
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Alice Martin")
	assert.Contains(t, html, "1250.50 DH")
	assert.Contains(t, html, "15/03/2025")
	assert.Contains(t, html, "resident-dashboard")
}

func TestTemplateManager_RenderGenericNotification(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateNotificationGeneric, TemplateData{
		"subject":           "Assemblée générale",
		"resident_name":     "Bob",
		"intro_text":        "Vous avez une nouvelle notification de votre syndic.",
		"message":           "L'assemblée aura lieu le 12 juin.",
		"notification_type": "Assemblée",
		"priority":          "Moyenne",
		"dashboard_url":     "http://127.0.0.1:8000/resident-dashboard/",
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Assemblée générale")
	assert.Contains(t, html, "12 juin")
	assert.Contains(t, html, "Priorité : Moyenne")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("nope", TemplateData{})

	assert.ErrorContains(t, err, "template not found")
}

func TestTemplateManager_AddTemplateOverridesBuiltin(t *testing.T) {
	tm := NewTemplateManager()

	require.NoError(t, tm.AddTemplate(TemplateNotificationGeneric, "<p>{{.message}}</p>"))

	html, err := tm.Render(TemplateNotificationGeneric, TemplateData{"message": "override"})
	require.NoError(t, err)
	assert.Equal(t, "<p>override</p>", html)
}

func TestTemplateManager_EscapesHTMLInData(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("t", "<p>{{.message}}</p>"))

	html, err := tm.Render("t", TemplateData{"message": "<script>alert(1)</script>"})

	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
