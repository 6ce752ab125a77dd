package knowledge

import "legalgpt-portal/models"

const disclaimer = `## Disclaimer

**IMPORTANT**: This system is designed for educational and research purposes only. The information provided should not be construed as legal advice. Users should consult qualified legal professionals for legal advice regarding their specific circumstances.

## Terms of Use

By using this platform, users acknowledge that:

1. AI-generated content may contain errors or inaccuracies
2. Legal interpretations require professional review
3. The platform does not replace legal counsel
4. Users assume responsibility for legal decisions based on platform output

*Built with precision for legal intelligence.*
`

func projectInfo() models.ProjectInfo {
	return models.ProjectInfo{
		Name:                 "Legal-GPT (AI Lawyer)",
		Headline:             "Legal-GPT: Open Source AI Legal Assistant",
		RepositoryURL:        "https://github.com/MetaMind-Aychain/GPT-Legal",
		Description:          "Legal-GPT is a sophisticated legal language model fine-tuned on legal corpora to provide intelligent legal question answering, case analysis, and legal provision interpretation.",
		PretrainedModelsPath: "models/",
		Features: []models.Feature{
			{
				Title:       "Legal Question Answering",
				Description: "Intelligent legal question answering powered by fine-tuned language models. The system can analyze complex legal queries and provide comprehensive responses based on legal corpora.",
			},
			{
				Title:       "Case Analysis",
				Description: "Comprehensive analysis of legal cases and precedents. The model can examine case facts, identify relevant legal principles, and provide detailed case law analysis.",
			},
			{
				Title:       "Legal Provision Interpretation",
				Description: "Detailed interpretation of legal provisions and statutes. The system helps users understand complex legal texts, constitutional amendments, and federal statutes.",
			},
			{
				Title:       "Multi-domain Legal Knowledge",
				Description: "Coverage of multiple legal domains including constitutional law, criminal law, civil rights, contract law, tort law, and more.",
			},
		},
		Implementation: []models.ImplementationStatus{
			{Title: "Core Model", Completed: true, Description: "Fine-tuned legal language model based on LLaMA architecture with LoRA (Low-Rank Adaptation) for efficient training."},
			{Title: "Training Pipeline", Completed: true, Description: "Complete training infrastructure supporting both instruction-based fine-tuning and causal language modeling approaches."},
			{Title: "Inference System", Completed: true, Description: "Robust inference engine with support for streaming output, configurable generation parameters, and batch processing."},
			{Title: "Web Interface", Completed: true, Description: "Interactive legal consultation capabilities and legal provision browsing."},
			{Title: "Legal Data Integration", Completed: true, Description: "Comprehensive integration of US legal provisions, landmark cases, and legal knowledge base for reference and analysis."},
			{Title: "Pre-trained Models", Completed: true, Description: "Pre-trained model weights available in the models folder, ready for deployment and further fine-tuning."},
		},
		Roadmap: []models.Feature{
			{Title: "Enhanced Model Capabilities", Description: "Expansion to support more legal domains, improved reasoning capabilities, and multi-lingual legal support."},
			{Title: "Real-time Legal Updates", Description: "Integration with legal databases for real-time updates on new cases, statutes, and regulatory changes."},
			{Title: "Advanced Analytics", Description: "Implementation of legal prediction models, case outcome analysis, and trend identification in legal systems."},
			{Title: "API Services", Description: "Development of RESTful API services for integration with legal practice management systems and legal research platforms."},
			{Title: "Collaborative Features", Description: "Support for multi-user collaboration, legal document sharing, and team-based legal research workflows."},
		},
		Acknowledgments: []models.Acknowledgment{
			{Name: "American-LLaMA-Alpaca", URL: "https://github.com/ymcui/American-LLaMA-Alpaca"},
			{Name: "LLaMA", URL: "https://github.com/facebookresearch/llama"},
			{Name: "Alpaca", URL: "https://github.com/tatsu-lab/stanford_alpaca"},
			{Name: "alpaca-lora", URL: "https://github.com/tloen/alpaca-lora"},
			{Name: "ChatGLM-6B", URL: "https://github.com/THUDM/ChatGLM-6B"},
			{Name: "Awesome American Legal Resources", URL: "#", Note: "Open data resources"},
		},
		Disclaimer: disclaimer,
	}
}
