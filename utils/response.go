package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes the structured error body: {"error": {"code", "message"}}.
func JSONError(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errCode,
			"message": message,
		},
	})
}

func JSONErrorDetails(c *gin.Context, code int, errCode, message, details string) {
	c.JSON(code, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errCode,
			"message": message,
			"details": details,
		},
	})
}

// JSONWarning is for a change that went through with a failed side effect:
// the data is returned next to the error.
func JSONWarning(c *gin.Context, code int, data interface{}, errCode, message, details string) {
	c.JSON(code, gin.H{
		"success": false,
		"status":  "warning",
		"data":    data,
		"error": gin.H{
			"code":    errCode,
			"message": message,
			"details": details,
		},
	})
}
