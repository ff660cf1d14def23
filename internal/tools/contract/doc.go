// Package contract provides the GenLayer contract-generation tools exposed
// over MCP.
//
// Every tool validates its inputs, assembles contract (or deployment
// script) text through internal/gen, and wraps the result in a Markdown
// report. Generation is pure string work: a tool either rejects its input
// or succeeds.
//
// Tools:
//   - generate_contract: base contract from storage fields, with optional
//     LLM and web-access capability blocks
//   - generate_template_contract: named full-contract templates
//   - create_prediction_market: yes/no prediction market
//   - create_vector_store: embedding-indexed text store
//   - add_llm_capabilities: append LLM methods to existing code
//   - add_web_access: append web data-access methods to existing code
//   - explain_concept: GenLayer concept documentation
//   - generate_deployment_script: genlayer-js deployment script
//   - fetch_docs: retrieve official documentation pages
package contract
