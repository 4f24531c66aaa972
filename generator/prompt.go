package generator

import "fmt"

const formatting = "Do not use large paragraphs, use proper spacing, and an aesthetically pleasing format for easy readability."

const (
	homeTemplate = "Craft an engaging homepage copy (around %d words) for a website that offers %s. " +
		"The content should immediately communicate the brand's value proposition and highlight its core identity, especially focusing on eco-friendly and sustainable aspects. " +
		"Start with a compelling, attention-grabbing introduction, followed by concise, easy-to-read paragraphs. " +
		"Share a brief and impactful brand story that resonates with the audience's needs and challenges. " +
		"Emphasize the business's dedication to sustainability and environmental responsibility. " +
		"Incorporate social proof, such as testimonials or achievements, to build credibility. " +
		"End with a clear, action-oriented call-to-action (CTA) that encourages visitors to take the next step, whether it's subscribing, purchasing, or exploring further. " +
		"Ensure the tone is inviting, concise, and aligned with the brand's values. " +
		"Use short paragraphs of not more than 3 lines, proper spacing, and an aesthetically pleasing format for easy readability."

	aboutUsTemplate = "Write an About Us page copy (around %d words) for a website. The website offers: %s. " +
		"Emphasize the business's mission, values, history, and vision for the future. " +
		"Include information on why the business is credible (such as achievements, collaborations, or industry recognition). " +
		"Address potential visitor questions like: 'Is this brand legit?' and 'Do I resonate with this brand's values and mission?' " +
		"Present the business's story in a way that establishes trust and invites visitors to connect. " +
		"Conclude with a call to action (CTA), encouraging visitors to take the next step (e.g., explore services, contact the business, or follow on social media). " +
		"Use simple words. " + formatting

	contactUsTemplate = "Write a Contact Us page copy (around %d words) for a website. The website provides: %s. " +
		"The copy should encourage users to get in touch by making it easy for them to reach out. " +
		"Highlight the various contact methods (e.g., contact form, email, phone number, live chat) and customer support options. " +
		"Include a brief invitation to contact, provide multiple avenues for getting in touch, and offer social proof (e.g., logos, testimonials). " +
		"Conclude with a call-to-action that makes reaching out easy and compelling. " +
		"Use simple words. " + formatting

	productsTemplate = "Write a Products page copy (around %d words) for a website. The website offers: %s. " +
		"Highlight the unique selling points of the products, any customization options, and the benefits for customers. " +
		"Create a compelling product name. " +
		"Provide essential technical details and specifications like material, dimensions, and weight. " +
		"Include any relevant information customers might actively look for. " +
		"Use clear and actionable copy for the 'Add to Cart' button (e.g., 'Add to Cart' or 'Buy Now'). " +
		"Include customer reviews and a strong call-to-action to purchase. " + formatting

	servicesTemplate = "Write a Services page copy (around %d words) for a website. The website offers: %s. " +
		"Clearly explain the services offered, highlight what makes them unique, outline the specific benefits for customers, and explain how these services solve key problems or improve the customer's experience. " +
		"Include a call-to-action (CTA) to encourage readers to contact or engage with the service. " + formatting

	landingTemplate = "Write an engaging landing page copy (around %d words) for a website that provides %s. " +
		"The copy should focus on persuading visitors to take immediate action while reinforcing the core benefits of the product or service. " +
		"Start with a bold and attention-grabbing headline that clearly communicates what the business offers. " +
		"Follow with a compelling subheading that explains how the product or service solves the visitors' pain points. " +
		"Use bullet points to succinctly outline key features and advantages, emphasizing how the brand stands out in terms of quality, sustainability, and eco-friendliness. " +
		"Conclude with a clear, action-oriented call-to-action (CTA) that encourages visitors to engage with the business. " + formatting

	faqsTemplate = "Write a Frequently Asked Questions (FAQ) page copy (around %d words) for a website that offers %s. " +
		"The page should include a clear and concise list of common questions customers might ask, along with detailed and helpful answers. " +
		"Organize the FAQ into sections, ensuring each answer is informative and addresses the user's needs. " +
		"Each section should be in a different paragraph, and every question should come first as a heading with its answer on the next line. " +
		"Every question and its answer should be on separate lines. " +
		"Prioritize clarity, simplicity, and usefulness in every response to improve the user experience. " + formatting
)

func templateFor(pt PageType) (string, bool) {
	switch pt {
	case Home:
		return homeTemplate, true
	case AboutUs:
		return aboutUsTemplate, true
	case ContactUs:
		return contactUsTemplate, true
	case Products:
		return productsTemplate, true
	case Services:
		return servicesTemplate, true
	case Landing:
		return landingTemplate, true
	case FAQs:
		return faqsTemplate, true
	}
	return "", false
}

// BuildPrompt renders the instruction for the given page type.
// It has no side effects; the same inputs always yield the same text.
func BuildPrompt(pt PageType, description string, wordCount int) (string, error) {
	tmpl, ok := templateFor(pt)
	if !ok {
		return "", &InvalidPageTypeError{Value: pt.String()}
	}
	return fmt.Sprintf(tmpl, wordCount, description), nil
}
