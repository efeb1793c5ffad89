package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

// Screen bodies are intentionally free of data/domain wiring: no use case,
// no repository, no binding dependencies beyond the controller or bloc
// itself. They share paths with the feature family but not content.

var screenGetxController = mustParse("screen_getx_controller", `import 'package:get/get.dart';

class {{.Pascal}}Controller extends GetxController {
  final count = 0.obs;

  void increment() => count.value++;
}
`)

var screenGetxPage = mustParse("screen_getx_page", `import 'package:flutter/material.dart';
import 'package:get/get.dart';

import '../controllers/{{.Snake}}_controller.dart';

/// {{.Pascal}} screen, scaffolded by {{.Author}}.
class {{.Pascal}}Page extends GetView<{{.Pascal}}Controller> {
  const {{.Pascal}}Page({super.key});

  @override
  Widget build(BuildContext context) {
    return Scaffold(
      appBar: AppBar(title: const Text('{{.Pascal}}')),
      body: Center(
        child: Obx(() => Text('${controller.count.value}')),
      ),
      floatingActionButton: FloatingActionButton(
        onPressed: controller.increment,
        child: const Icon(Icons.add),
      ),
    );
  }
}
`)

var screenGetxBinding = mustParse("screen_getx_binding", `import 'package:get/get.dart';

import '../controllers/{{.Snake}}_controller.dart';

class {{.Pascal}}Binding extends Bindings {
  @override
  void dependencies() {
    Get.lazyPut(() => {{.Pascal}}Controller());
  }
}
`)

var screenBloc = mustParse("screen_bloc", `import 'package:flutter_bloc/flutter_bloc.dart';

part '{{.Snake}}_event.dart';
part '{{.Snake}}_state.dart';

class {{.Pascal}}Bloc extends Bloc<{{.Pascal}}Event, {{.Pascal}}State> {
  {{.Pascal}}Bloc() : super(const {{.Pascal}}State(count: 0)) {
    on<{{.Pascal}}Incremented>((event, emit) {
      emit({{.Pascal}}State(count: state.count + 1));
    });
  }
}
`)

var screenBlocEvent = mustParse("screen_bloc_event", `part of '{{.Snake}}_bloc.dart';

abstract class {{.Pascal}}Event {
  const {{.Pascal}}Event();
}

class {{.Pascal}}Incremented extends {{.Pascal}}Event {
  const {{.Pascal}}Incremented();
}
`)

var screenBlocState = mustParse("screen_bloc_state", `part of '{{.Snake}}_bloc.dart';

class {{.Pascal}}State {
  const {{.Pascal}}State({required this.count});

  final int count;
}
`)

var screenBlocPage = mustParse("screen_bloc_page", `import 'package:flutter/material.dart';
import 'package:flutter_bloc/flutter_bloc.dart';

import '../bloc/{{.Snake}}_bloc.dart';

/// {{.Pascal}} screen, scaffolded by {{.Author}}.
class {{.Pascal}}Page extends StatelessWidget {
  const {{.Pascal}}Page({super.key});

  @override
  Widget build(BuildContext context) {
    return BlocProvider<{{.Pascal}}Bloc>(
      create: (_) => {{.Pascal}}Bloc(),
      child: Scaffold(
        appBar: AppBar(title: const Text('{{.Pascal}}')),
        body: Center(
          child: BlocBuilder<{{.Pascal}}Bloc, {{.Pascal}}State>(
            builder: (context, state) => Text('${state.count}'),
          ),
        ),
        floatingActionButton: Builder(
          builder: (context) => FloatingActionButton(
            onPressed: () =>
                context.read<{{.Pascal}}Bloc>().add(const {{.Pascal}}Incremented()),
            child: const Icon(Icons.add),
          ),
        ),
      ),
    );
  }
}
`)

// ScreenPage renders the standalone page for the active family.
func ScreenPage(name string, cfg config.Config) string {
	d := newCtx(name, cfg)
	if cfg.StateManager() == config.Bloc {
		return render(screenBlocPage, d)
	}
	return render(screenGetxPage, d)
}

// ScreenBinding renders the reactive-family binding. The event-driven
// screen has no binding file; its page wires its own BlocProvider.
func ScreenBinding(name string, cfg config.Config) string {
	return render(screenGetxBinding, newCtx(name, cfg))
}

// ScreenController renders the reactive-family standalone controller.
func ScreenController(name string, cfg config.Config) string {
	return render(screenGetxController, newCtx(name, cfg))
}

// ScreenBloc renders the standalone bloc and its part files.
func ScreenBloc(name string, cfg config.Config) string {
	return render(screenBloc, newCtx(name, cfg))
}

// ScreenBlocEvent renders the standalone event set.
func ScreenBlocEvent(name string, cfg config.Config) string {
	return render(screenBlocEvent, newCtx(name, cfg))
}

// ScreenBlocState renders the standalone state set.
func ScreenBlocState(name string, cfg config.Config) string {
	return render(screenBlocState, newCtx(name, cfg))
}
