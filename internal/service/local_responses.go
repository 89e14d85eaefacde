package service

import (
	"fmt"
	"strings"
)

// responseRule asocia un grupo de keywords con un bloque de ayuda fijo.
// El orden de la lista importa: gana el primer grupo que matchee.
type responseRule struct {
	keywords []string
	text     string
}

var localRules = []responseRule{
	{keywords: []string{"python"}, text: pythonHelp},
	{keywords: []string{"javascript", "js"}, text: javascriptHelp},
	{keywords: []string{"debug", "error"}, text: debugHelp},
	{keywords: []string{"web development", "html", "css"}, text: webHelp},
}

// localAnswer genera la respuesta canned para una consulta: matching de
// substring sin distinguir mayúsculas, o el bloque genérico que repite la
// consulta textual cuando nada matchea.
func localAnswer(query string) string {
	lower := strings.ToLower(query)
	for _, rule := range localRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.text
			}
		}
	}
	return fmt.Sprintf(genericHelp, query)
}

const pythonHelp = "I can help you with Python! Here are some suggestions:\n\n" +
	"**For Python Programming:**\n" +
	"- Use proper indentation (4 spaces)\n" +
	"- Follow PEP 8 style guidelines\n" +
	"- Use virtual environments for projects\n" +
	"- Consider using `requirements.txt` for dependencies\n\n" +
	"**Common Python Libraries:**\n" +
	"- `pandas` for data manipulation\n" +
	"- `requests` for HTTP requests\n" +
	"- `numpy` for numerical computing\n" +
	"- `flask` or `django` for web development\n\n" +
	"**Example Code:**\n" +
	"```python\n" +
	"def hello_world():\n" +
	"    print(\"Hello, World!\")\n" +
	"    return \"Success\"\n" +
	"```\n\n" +
	"Would you like me to help with a specific Python problem?"

const javascriptHelp = "JavaScript assistance at your service! \U0001F680\n\n" +
	"**Modern JavaScript Best Practices:**\n" +
	"- Use `const` and `let` instead of `var`\n" +
	"- Leverage arrow functions: `const add = (a, b) => a + b`\n" +
	"- Use async/await for asynchronous operations\n" +
	"- Implement proper error handling with try/catch\n\n" +
	"**Popular Frameworks:**\n" +
	"- **React**: For building user interfaces\n" +
	"- **Vue.js**: Progressive framework\n" +
	"- **Node.js**: Server-side JavaScript\n" +
	"- **Express.js**: Web framework for Node.js\n\n" +
	"**Example:**\n" +
	"```javascript\n" +
	"async function fetchData(url) {\n" +
	"    try {\n" +
	"        const response = await fetch(url);\n" +
	"        const data = await response.json();\n" +
	"        return data;\n" +
	"    } catch (error) {\n" +
	"        console.error('Error:', error);\n" +
	"    }\n" +
	"}\n" +
	"```\n\n" +
	"What specific JavaScript challenge can I help you solve?"

const debugHelp = "Debugging Made Easy! \U0001F41B\n\n" +
	"**Debugging Strategy:**\n" +
	"1. **Reproduce the issue** consistently\n" +
	"2. **Check the console** for error messages\n" +
	"3. **Use breakpoints** to pause execution\n" +
	"4. **Log variables** to understand data flow\n" +
	"5. **Test incrementally** with smaller code blocks\n\n" +
	"**Common Debugging Tools:**\n" +
	"- Browser DevTools (F12)\n" +
	"- `console.log()` statements\n" +
	"- Debugger statements: `debugger;`\n" +
	"- Linting tools (ESLint, Pylint)\n\n" +
	"**Quick Tips:**\n" +
	"- Read error messages carefully\n" +
	"- Check for typos in variable names\n" +
	"- Verify API endpoints and data formats\n" +
	"- Test with simplified inputs first\n\n" +
	"Share your specific error message, and I'll help you solve it step by step!"

const webHelp = "Web Development Guidance! \U0001F310\n\n" +
	"**Frontend Technologies:**\n" +
	"- **HTML5**: Semantic markup and structure\n" +
	"- **CSS3**: Modern styling with flexbox/grid\n" +
	"- **JavaScript**: Interactive functionality\n" +
	"- **Responsive Design**: Mobile-first approach\n\n" +
	"**CSS Best Practices:**\n" +
	"```css\n" +
	"/* Use CSS Custom Properties */\n" +
	":root {\n" +
	"    --primary-color: #2563eb;\n" +
	"    --text-color: #1e293b;\n" +
	"}\n\n" +
	"/* Mobile-first responsive design */\n" +
	".container {\n" +
	"    width: 100%;\n" +
	"    max-width: 1200px;\n" +
	"    margin: 0 auto;\n" +
	"    padding: 0 1rem;\n" +
	"}\n" +
	"```\n\n" +
	"**Modern Web Tools:**\n" +
	"- Build tools: Webpack, Vite\n" +
	"- CSS frameworks: Tailwind CSS, Bootstrap\n" +
	"- Version control: Git and GitHub\n" +
	"- Package managers: npm, yarn\n\n" +
	"What aspect of web development would you like to explore further?"

const genericHelp = "Thank you for your query! I'm here to help with technical problems and programming challenges.\n\n" +
	"**I can assist with:**\n" +
	"- \U0001F40D Python programming and debugging\n" +
	"- \U0001F310 Web development (HTML, CSS, JavaScript)\n" +
	"- \U0001F4F1 Mobile app development concepts\n" +
	"- \U0001F916 AI and machine learning basics\n" +
	"- \U0001F527 Code optimization and best practices\n" +
	"- \U0001F41B Debugging and troubleshooting\n\n" +
	"**To get the best help:**\n" +
	"1. Be specific about your problem\n" +
	"2. Include error messages if any\n" +
	"3. Mention your programming language/framework\n" +
	"4. Share relevant code snippets\n\n" +
	"**Your query:** \"%s\"\n\n" +
	"Please provide more details about what you'd like help with, and I'll give you a more targeted response!"
