package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
)

// assistantSystemPrompt frames the chat completion for the PIFAH domain.
const assistantSystemPrompt = `You are the PIFAH AI Assistant, a helpful and knowledgeable chatbot for the Programme for Investment and Financing in Africa's Health Sector (PIFAH) platform.

Your role is to:
1. Help users understand PIFAH and its mission to advance health sector investment across Africa
2. Explain the five strategic investment pillars:
   - Health Infrastructure: Building and upgrading health facilities
   - Local Manufacturing: Producing pharmaceuticals and medical supplies locally
   - Diagnostics & Imaging: Improving diagnostic capabilities
   - Digital Health & AI: Leveraging technology for healthcare delivery
   - Human Capital Development: Training and retaining healthcare workers
3. Provide information about the eight Regional Economic Communities (RECs): COMESA, EAC, ECCAS, ECOWAS, IGAD, SADC, AMU, and CEN-SAD
4. Guide users through the project submission and approval process
5. Answer questions about health sector investment opportunities in Africa
6. Explain the platform's features (project submission, map exploration, Community of Practice, FAQ)

Be friendly, professional, and concise. Focus on health sector investment in Africa. If asked about topics outside your scope, politely redirect to PIFAH-related information.`

type assistantMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AssistantChat proxies a conversation to the chat-completion service.
// Thin pass-through: no history is stored on the server.
func AssistantChat(c *gin.Context) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Assistant is not configured"})
		return
	}

	var req struct {
		Messages []assistantMessage `json:"messages" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: assistantSystemPrompt,
	})
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	client := openai.NewClient(apiKey)
	resp, err := client.CreateChatCompletion(c.Request.Context(), openai.ChatCompletionRequest{
		Model:    openai.GPT4oMini,
		Messages: messages,
	})
	if err != nil || len(resp.Choices) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Assistant is unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reply":   resp.Choices[0].Message.Content,
	})
}
